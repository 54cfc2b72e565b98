// Copyright 2025 GoVision ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization provides the public API for saving and loading
// typed entities in the GoVision container format.
//
// A container holds named entities with their raw tensor storage and kind
// metadata: magic bytes, a JSON header, a SHA-256 checksum and an
// optionally zstd-compressed data section.
//
//	entities := map[string]*tvtensors.TVTensor{"boxes": boxes}
//	err := serialization.SaveFile("scene.gvts", entities,
//	    serialization.SaveOptions{Compress: true})
//
//	loaded, err := serialization.LoadFile("scene.gvts", backend)
package serialization

import (
	"io"

	"github.com/govision-ml/govision/internal/serialization"
	"github.com/govision-ml/govision/tensor"
	"github.com/govision-ml/govision/tvtensors"
)

// SaveOptions controls container writing.
type SaveOptions = serialization.SaveOptions

// Sentinel errors.
var (
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
)

// Save writes the named entities to w in sorted name order.
func Save(w io.Writer, entities map[string]*tvtensors.TVTensor, opts SaveOptions) error {
	return serialization.Save(w, entities, opts)
}

// SaveFile writes the named entities to a file at path.
func SaveFile(path string, entities map[string]*tvtensors.TVTensor, opts SaveOptions) error {
	return serialization.SaveFile(path, entities, opts)
}

// Load reads a container from r and reconstructs its entities on the
// given backend.
func Load(r io.Reader, b tensor.Backend) (map[string]*tvtensors.TVTensor, error) {
	return serialization.Load(r, b)
}

// LoadFile reads a container from the file at path.
func LoadFile(path string, b tensor.Backend) (map[string]*tvtensors.TVTensor, error) {
	return serialization.LoadFile(path, b)
}
