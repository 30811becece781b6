package foodweb

import "errors"

// Validation errors reported before any integration begins.
var (
	// ErrTemperature indicates a non-positive absolute temperature.
	ErrTemperature = errors.New("foodweb: temperature must be positive")

	// ErrIndexRange indicates a pool index outside the compartment list.
	ErrIndexRange = errors.New("foodweb: pool index out of range")

	// ErrIndexClash indicates the resource and consumer indices coincide.
	ErrIndexClash = errors.New("foodweb: resource and consumer indices must differ")

	// ErrPoolCount indicates the ecosystem does not hold exactly one carbon
	// pool and one nutrient pool.
	ErrPoolCount = errors.New("foodweb: ecosystem needs exactly one carbon pool and one nutrient pool")

	// ErrStateLength indicates an initial state whose length does not match
	// the compartment count.
	ErrStateLength = errors.New("foodweb: initial state length does not match compartment count")

	// ErrTimeSpan indicates stop <= start.
	ErrTimeSpan = errors.New("foodweb: stop time must be after start time")

	// ErrSampleStep indicates a non-positive output sampling interval.
	ErrSampleStep = errors.New("foodweb: sampling interval must be positive")
)
