package pppos

type VJCodec struct {
	Compress func(payload []byte) (out []byte, protocol uint16, err error)

	DecompressCompressed func(payload []byte) ([]byte, error)

	DecompressUncompressed func(payload []byte) ([]byte, error)

	Configure func(slotCompression bool, maxSlots int)

	DropErrorHook func()

	Init func()
}

func (v VJCodec) enabled() bool {
	return v.Compress != nil
}

func (v VJCodec) dropErrorHook() {
	if v.DropErrorHook != nil {
		v.DropErrorHook()
	}
}

var NoopVJCodec = VJCodec{}
