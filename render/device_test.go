// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// bareProvider exposes no HAL accessors.
type bareProvider struct{}

// untypedProvider has the accessor methods but returns values that are not
// HAL device types.
type untypedProvider struct{}

func (untypedProvider) HalDevice() any { return "not a device" }
func (untypedProvider) HalQueue() any  { return nil }

func TestResolveDevice(t *testing.T) {
	tests := []struct {
		name     string
		provider any
		wantErr  error
	}{
		{"nil provider", nil, ErrNilProvider},
		{"provider without accessors", bareProvider{}, ErrNoHALDevice},
		{"null provider", NullProvider{}, ErrNoHALDevice},
		{"provider with wrong types", untypedProvider{}, ErrNoHALDevice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := resolveDevice(tt.provider)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("resolveDevice() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// contextProvider implements gpucontext.DeviceProvider the way gogpu's
// App.GPUContextProvider does: Device() is the concrete *wgpu.Device.
type contextProvider struct {
	device *wgpu.Device
}

func (p contextProvider) Device() gpucontext.Device             { return p.device }
func (p contextProvider) Queue() gpucontext.Queue               { return p.device.Queue() }
func (p contextProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (p contextProvider) Adapter() gpucontext.Adapter           { return nil }
func (p contextProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

// emptyContextProvider is a device provider with no device attached.
type emptyContextProvider struct {
	contextProvider
}

func (emptyContextProvider) Device() gpucontext.Device { return nil }
func (emptyContextProvider) Queue() gpucontext.Queue   { return nil }

func TestResolveDeviceFromContextProvider(t *testing.T) {
	np := newNoopProvider()
	dev, err := wgpu.NewDeviceFromHAL(np.device, np.queue, 0, wgpu.Limits{}, "test")
	if err != nil {
		t.Fatalf("NewDeviceFromHAL() error = %v", err)
	}

	device, queue, err := resolveDevice(contextProvider{device: dev})
	if err != nil {
		t.Fatalf("resolveDevice() error = %v", err)
	}
	if device == nil || queue == nil {
		t.Fatal("resolveDevice() returned nil HAL handles")
	}

	if _, _, err := resolveDevice(emptyContextProvider{}); !errors.Is(err, ErrNoHALDevice) {
		t.Errorf("resolveDevice(no device) error = %v, want %v", err, ErrNoHALDevice)
	}
}

func TestNewRejectsBadProvider(t *testing.T) {
	if _, err := New(bareProvider{}, nil, 0); !errors.Is(err, ErrNoHALDevice) {
		t.Errorf("New() error = %v, want %v", err, ErrNoHALDevice)
	}
}
