package storage

import (
	"alarmclock/internal/storage/interfaces"
	"alarmclock/internal/structures"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, nil), nil
}

func (z *ZstdCompression) Decompress(val []byte) ([]byte, error) {
	out, err := z.decoder.DecodeAll(val, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}

func (z *ZstdCompression) Close() {
	_ = z.encoder.Close()
	z.decoder.Close()
}

// NewZstdCompressor builds a single-threaded codec. Alarm lists are a few
// hundred bytes written by one goroutine.
func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

// plainCompression stores bytes as they are.
type plainCompression struct{}

func (plainCompression) Compress(val []byte) ([]byte, error)   { return val, nil }
func (plainCompression) Decompress(val []byte) ([]byte, error) { return val, nil }
func (plainCompression) Close()                                {}

func NewCompressorProvider(conf *structures.Config) (interfaces.CompressorInterface, error) {
	if conf.Storage.Driver == "file" && conf.Storage.Compress {
		return NewZstdCompressor()
	}
	return plainCompression{}, nil
}
