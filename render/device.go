// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/hal"
)

// NullProvider is a device provider that exposes no GPU. New rejects it
// with [ErrNoHALDevice]; tests and headless code paths use it to exercise
// setup failure handling without a live backend.
type NullProvider struct{}

// HalDevice returns nil for the null provider.
func (NullProvider) HalDevice() any { return nil }

// HalQueue returns nil for the null provider.
func (NullProvider) HalQueue() any { return nil }

// resolveDevice extracts the shared HAL device and queue from a window's
// GPU context provider. gogpu's App.GPUContextProvider hands out a
// gpucontext.DeviceProvider whose Device() is the concrete *wgpu.Device;
// the HAL handles come from its HalDevice and HalQueue accessors. Providers
// may instead expose the HAL types directly via HalDevice() any and
// HalQueue() any.
func resolveDevice(provider any) (hal.Device, hal.Queue, error) {
	if provider == nil {
		return nil, nil, ErrNilProvider
	}
	if dp, ok := provider.(gpucontext.DeviceProvider); ok {
		dev, ok := dp.Device().(*wgpu.Device)
		if !ok || dev == nil {
			return nil, nil, ErrNoHALDevice
		}
		device := dev.HalDevice()
		queue := dev.HalQueue()
		if device == nil || queue == nil {
			return nil, nil, ErrNoHALDevice
		}
		return device, queue, nil
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, ErrNoHALDevice
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, ErrNoHALDevice
	}
	return device, queue, nil
}
