package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/govision-ml/govision/internal/tensor"
	"github.com/govision-ml/govision/internal/tvtensors"
)

// Load reads a container from r and reconstructs its entities on the
// given backend. Contents, shapes, dtypes, kind metadata and the
// gradient-tracking flag round-trip.
func Load(r io.Reader, b tensor.Backend) (map[string]*tvtensors.TVTensor, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, magic)
	}

	fixed := make([]byte, 12)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	version := binary.LittleEndian.Uint32(fixed[0:4])
	flags := binary.LittleEndian.Uint32(fixed[4:8])
	headerLen := binary.LittleEndian.Uint32(fixed[8:12])
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	headerJSON := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("failed to unmarshal header: %w", err)
	}

	var stored [ChecksumSize]byte
	if _, err := io.ReadFull(r, stored[:]); err != nil {
		return nil, fmt.Errorf("failed to read checksum: %w", err)
	}
	var size [8]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return nil, fmt.Errorf("failed to read data size: %w", err)
	}
	payload := make([]byte, binary.LittleEndian.Uint64(size[:]))
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("failed to read data section: %w", err)
	}

	if err := ValidateChecksum(ComputeChecksum(payload), stored); err != nil {
		return nil, err
	}

	if flags&FlagZstd != 0 {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()
		payload, err = dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress data section: %w", err)
		}
	}

	entities := make(map[string]*tvtensors.TVTensor, len(header.Entities))
	for _, meta := range header.Entities {
		tv, err := loadEntity(meta, payload, b)
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", meta.Name, err)
		}
		entities[meta.Name] = tv
	}
	return entities, nil
}

func loadEntity(meta EntityMeta, payload []byte, b tensor.Backend) (*tvtensors.TVTensor, error) {
	dtype, ok := stringToDtype(meta.DType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDType, meta.DType)
	}
	kind, ok := stringToKind(meta.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, meta.Kind)
	}

	end := meta.Offset + meta.Size
	if meta.Offset < 0 || end > int64(len(payload)) {
		return nil, fmt.Errorf("%w: [%d, %d) in %d bytes", ErrOutOfBounds, meta.Offset, end, len(payload))
	}

	raw, err := tensor.New(tensor.Shape(meta.Shape), dtype, b)
	if err != nil {
		return nil, err
	}
	copy(raw.Data(), payload[meta.Offset:end])
	raw.SetRequiresGrad(meta.RequiresGrad)

	canvas := tvtensors.CanvasSize{Height: meta.CanvasHeight, Width: meta.CanvasWidth}
	switch kind {
	case tvtensors.KindImage:
		return tvtensors.NewImage(raw)
	case tvtensors.KindMask:
		return tvtensors.NewMask(raw)
	case tvtensors.KindVideo:
		return tvtensors.NewVideo(raw)
	case tvtensors.KindBoundingBoxes:
		format, err := tvtensors.ParseBoundingBoxFormat(meta.Format)
		if err != nil {
			return nil, err
		}
		clamping, err := tvtensors.ParseClampingMode(meta.ClampingMode)
		if err != nil {
			return nil, err
		}
		return tvtensors.NewBoundingBoxes(raw, format, canvas, tvtensors.WithClampingMode(clamping))
	case tvtensors.KindKeyPoints:
		return tvtensors.NewKeyPoints(raw, canvas)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, meta.Kind)
	}
}

// LoadFile reads a container from the file at path.
func LoadFile(path string, b tensor.Backend) (map[string]*tvtensors.TVTensor, error) {
	//nolint:gosec // G304: file path comes from the caller, which is expected for loading
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Load(f, b)
}
