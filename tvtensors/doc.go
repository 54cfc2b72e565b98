// Copyright 2025 GoVision ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tvtensors provides typed tensor entities for vision data
// pipelines: Image, Mask, BoundingBoxes, KeyPoints and Video wrappers
// that carry semantic metadata alongside raw tensor data.
//
// # Return-type dispatch
//
// Every operation on an entity is intercepted. Operations outside the
// metadata-preserving allow-list always return a plain *tensor.Tensor;
// allow-list operations (Clone, To, Detach, SetRequiresGrad, PinMemory
// and the in-place arithmetic forms) additionally consult the
// process-wide return type:
//
//	img, _ := tvtensors.NewImage(data)
//
//	out := img.Clone() // *tensor.Tensor: default return type is Tensor
//
//	restore, _ := tvtensors.SetReturnType("TVTensor")
//	defer restore()
//	out = img.Clone() // *tvtensors.TVTensor, metadata preserved
//
// The restore function reconstructs the return type captured at the call,
// so nested scopes unwind correctly even through intervening direct sets.
//
// # Wrapping
//
// Results produced outside the interception path can be re-typed without
// copying via Wrap:
//
//	doubled, _ := boxes.Mul(two)           // plain tensor
//	boxes2 := tvtensors.Wrap(doubled, boxes) // BoundingBoxes again
//
// The return-type switch is ordinary process-wide state with no
// cross-goroutine synchronization; callers own the single-threaded
// cooperative discipline.
package tvtensors
