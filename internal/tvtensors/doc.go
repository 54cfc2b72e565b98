// Package tvtensors implements typed tensor entities for vision data
// pipelines: Image, Mask, BoundingBoxes, KeyPoints and Video wrappers that
// carry semantic metadata (coordinate format, canvas size, clamping mode)
// alongside raw tensor data while remaining interchangeable with the plain
// tensor type.
//
// Every operation on an entity funnels through a single interception
// point that decides whether the result keeps the entity's type and
// metadata or degrades to a plain *tensor.Tensor. The decision combines a
// process-wide return-type switch (see SetReturnType) with a configured
// allow-list of metadata-preserving operations (see PreservingOps).
package tvtensors
