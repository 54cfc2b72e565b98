package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/govision-ml/govision/internal/tvtensors"
)

const libraryVersion = "0.1.0" // Current GoVision version

// SaveOptions controls container writing.
type SaveOptions struct {
	Compress bool // zstd-compress the data section
}

// Save writes the named entities to w. Entities are written in sorted
// name order so output is deterministic.
func Save(w io.Writer, entities map[string]*tvtensors.TVTensor, opts SaveOptions) error {
	names := make([]string, 0, len(entities))
	for name := range entities {
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion:  FormatVersion,
		LibraryVersion: libraryVersion,
		CreatedAt:      time.Now().UTC(),
		Entities:       make([]EntityMeta, 0, len(entities)),
	}

	var data bytes.Buffer
	var offset int64
	for _, name := range names {
		tv := entities[name]
		raw := tv.Unwrap()

		meta := EntityMeta{
			Name:         name,
			Kind:         tv.Kind().String(),
			DType:        dtypeToString(raw.DType()),
			Shape:        []int(raw.Shape()),
			RequiresGrad: raw.RequiresGrad(),
			Offset:       offset,
			Size:         int64(raw.ByteSize()),
		}
		if m := tv.Metadata(); m != nil {
			meta.CanvasHeight = m.CanvasSize.Height
			meta.CanvasWidth = m.CanvasSize.Width
			if tv.Kind() == tvtensors.KindBoundingBoxes {
				meta.Format = m.Format.String()
				meta.ClampingMode = m.ClampingMode.String()
			}
		}
		header.Entities = append(header.Entities, meta)

		if _, err := data.Write(raw.Data()); err != nil {
			return fmt.Errorf("failed to buffer entity %q: %w", name, err)
		}
		offset += meta.Size
	}

	payload := data.Bytes()
	var flags uint32
	if opts.Compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		payload = enc.EncodeAll(payload, nil)
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to close zstd encoder: %w", err)
		}
		flags |= FlagZstd
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if _, err := w.Write([]byte(MagicBytes)); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	fixed := make([]byte, 12)
	binary.LittleEndian.PutUint32(fixed[0:4], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[4:8], flags)
	binary.LittleEndian.PutUint32(fixed[8:12], uint32(len(headerJSON)))
	if _, err := w.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	checksum := ComputeChecksum(payload)
	if _, err := w.Write(checksum[:]); err != nil {
		return fmt.Errorf("failed to write checksum: %w", err)
	}
	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(len(payload)))
	if _, err := w.Write(size[:]); err != nil {
		return fmt.Errorf("failed to write data size: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write data section: %w", err)
	}
	return nil
}

// SaveFile writes the named entities to a file at path.
func SaveFile(path string, entities map[string]*tvtensors.TVTensor, opts SaveOptions) error {
	//nolint:gosec // G304: file path comes from the caller, which is expected for saving
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Save(f, entities, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
