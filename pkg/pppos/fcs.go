package pppos

const fcsInit = uint16(0xffff)
const fcsGood = uint16(0xf0b8)

// fcsStep is implemented in fcs_table.go (default) or fcs_bitwise.go
// (build tag "bitwisefcs").
