// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	_ "embed"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/hal"

	tictactoe "github.com/gogpu/tictactoe"
	"github.com/gogpu/tictactoe/mesh"
)

// Embedded sprite quad shader source.
//
//go:embed shaders/sprite.wgsl
var spriteShaderSource string

// Renderer draws a batch of textured board quads into a surface texture
// view each frame. It holds the sprite sheet as a GPU texture and a single
// render pipeline; the vertex buffer is recreated only when the batch
// outgrows it.
//
// The renderer borrows the device and queue from the hosting window and
// never destroys them.
type Renderer struct {
	device hal.Device
	queue  hal.Queue

	// GPU objects for the render pipeline.
	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	// Sprite sheet texture and its bind group.
	sampler   hal.Sampler
	sheetTex  hal.Texture
	sheetView hal.TextureView
	bindGroup hal.BindGroup

	// Per-frame vertex batch. The buffer grows but never shrinks.
	vertexBuf   hal.Buffer
	vertexCap   uint64
	vertexCount uint32

	// Submissions the GPU may still be executing. Their command buffers
	// are freed once PollCompleted passes the submission index.
	inflight []frameSubmission

	destroyed bool
}

// frameSubmission pairs a submission index with the command buffer that
// must stay alive until the GPU finishes it.
type frameSubmission struct {
	index  uint64
	cmdBuf hal.CommandBuffer
}

// New creates a renderer on the device shared by the given provider and
// uploads the sprite sheet. The provider is the window's GPU context
// provider (gogpu's App.GPUContextProvider); see resolveDevice for the
// accepted shapes. format is the surface texture format;
// TextureFormatUndefined selects BGRA8Unorm.
func New(provider any, sheet *image.RGBA, format gputypes.TextureFormat) (*Renderer, error) {
	device, queue, err := resolveDevice(provider)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, ErrNilSheet
	}
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatBGRA8Unorm
	}

	r := &Renderer{device: device, queue: queue}

	if err := r.createPipeline(format); err != nil {
		r.Destroy()
		return nil, err
	}
	if err := r.uploadSheet(sheet); err != nil {
		r.Destroy()
		return nil, err
	}

	tictactoe.Logger().Debug("renderer ready",
		"format", format,
		"sheet_width", sheet.Bounds().Dx(),
		"sheet_height", sheet.Bounds().Dy())
	return r, nil
}

// createPipeline compiles the sprite shader and creates the render pipeline
// with premultiplied alpha blending against the surface format.
func (r *Renderer) createPipeline(format gputypes.TextureFormat) error {
	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "sprite_shader",
		Source: hal.ShaderSource{WGSL: spriteShaderSource},
	})
	if err != nil {
		// Some backends only accept SPIR-V modules.
		spirv, cerr := compileSPIRV(spriteShaderSource)
		if cerr != nil {
			return fmt.Errorf("compile sprite shader: %w", err)
		}
		shader, err = r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  "sprite_shader",
			Source: hal.ShaderSource{SPIRV: spirv},
		})
		if err != nil {
			return fmt.Errorf("compile sprite shader: %w", err)
		}
	}
	r.shader = shader

	// Bind group layout:
	//   Binding 0: sprite sheet texture (texture_2d, fragment)
	//   Binding 1: sampler (fragment)
	bindLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "sprite_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create sprite bind layout: %w", err)
	}
	r.bindLayout = bindLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "sprite_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create sprite pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	sampler, err := r.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "sprite_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create sprite sampler: %w", err)
	}
	r.sampler = sampler

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "sprite_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers:    spriteVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create sprite pipeline: %w", err)
	}
	r.pipeline = pipeline

	return nil
}

// uploadSheet creates the sheet texture, uploads the pixels, and builds the
// texture+sampler bind group.
func (r *Renderer) uploadSheet(sheet *image.RGBA) error {
	bounds := sheet.Bounds()
	w := uint32(bounds.Dx()) //nolint:gosec // sheet dimensions fit uint32
	h := uint32(bounds.Dy()) //nolint:gosec // sheet dimensions fit uint32

	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "sprite_sheet",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create sheet texture: %w", err)
	}
	r.sheetTex = tex

	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "sprite_sheet_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("create sheet texture view: %w", err)
	}
	r.sheetView = view

	err = r.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  r.sheetTex,
			MipLevel: 0,
		},
		tightPixels(sheet),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("upload sheet pixels: %w", err)
	}

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "sprite_bind",
		Layout: r.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{
				TextureView: r.sheetView.NativeHandle(),
			}},
			{Binding: 1, Resource: gputypes.SamplerBinding{
				Sampler: r.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create sprite bind group: %w", err)
	}
	r.bindGroup = bindGroup

	return nil
}

// Upload replaces the frame's vertex batch. The vertex buffer is recreated
// only when the batch outgrows its capacity.
func (r *Renderer) Upload(verts []mesh.Vertex) error {
	if r.destroyed {
		return ErrDestroyed
	}

	data := mesh.Bytes(verts)
	if len(data) == 0 {
		r.vertexCount = 0
		return nil
	}
	size := uint64(len(data))
	if r.vertexBuf == nil || size > r.vertexCap {
		if r.vertexBuf != nil {
			r.device.DestroyBuffer(r.vertexBuf)
			r.vertexBuf = nil
		}
		buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "sprite_verts",
			Size:  size,
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create vertex buffer: %w", err)
		}
		r.vertexBuf = buf
		r.vertexCap = size
	}
	if err := r.queue.WriteBuffer(r.vertexBuf, 0, data); err != nil {
		return fmt.Errorf("write vertex buffer: %w", err)
	}
	r.vertexCount = uint32(len(verts)) //nolint:gosec // vertex count fits uint32

	return nil
}

// Draw records a render pass that clears the surface to white and draws the
// uploaded batch, then submits it. Submission does not block: the command
// buffer is retired on a later frame once the GPU reports the submission
// complete. view is the frame's surface texture view (gogpu's
// Context.SurfaceView).
func (r *Renderer) Draw(view *wgpu.TextureView) error {
	if r.destroyed {
		return ErrDestroyed
	}
	if view == nil {
		return ErrNilSurfaceView
	}
	surfaceView := view.HalTextureView()
	if surfaceView == nil {
		// Released views hand back a nil HAL handle.
		return ErrNilSurfaceView
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "sprite_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("board_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "board_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       surfaceView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 1, G: 1, B: 1, A: 1},
		}},
	})

	if r.vertexCount > 0 {
		rp.SetPipeline(r.pipeline)
		rp.SetBindGroup(0, r.bindGroup, nil)
		rp.SetVertexBuffer(0, r.vertexBuf, 0)
		rp.Draw(r.vertexCount, 1, 0, 0)
	}

	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}

	r.reclaim(r.queue.PollCompleted())

	subIdx, err := r.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		r.device.FreeCommandBuffer(cmdBuf)
		return fmt.Errorf("submit: %w", err)
	}
	r.inflight = append(r.inflight, frameSubmission{index: subIdx, cmdBuf: cmdBuf})

	return nil
}

// reclaim frees command buffers whose submission index the GPU has passed.
func (r *Renderer) reclaim(completed uint64) {
	kept := r.inflight[:0]
	for _, s := range r.inflight {
		if s.index <= completed {
			r.device.FreeCommandBuffer(s.cmdBuf)
		} else {
			kept = append(kept, s)
		}
	}
	r.inflight = kept
}

// VertexCount reports the number of vertices in the current batch.
func (r *Renderer) VertexCount() uint32 {
	return r.vertexCount
}

// Destroy releases all GPU resources held by the renderer except the shared
// device and queue. Safe to call multiple times.
func (r *Renderer) Destroy() {
	if r.destroyed || r.device == nil {
		return
	}
	// The device and queue are shared with the hosting window; drain our
	// in-flight work before releasing resources the GPU may still touch.
	if len(r.inflight) > 0 {
		_ = r.device.WaitIdle()
		r.reclaim(math.MaxUint64)
	}
	if r.vertexBuf != nil {
		r.device.DestroyBuffer(r.vertexBuf)
		r.vertexBuf = nil
	}
	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.sheetView != nil {
		r.device.DestroyTextureView(r.sheetView)
		r.sheetView = nil
	}
	if r.sheetTex != nil {
		r.device.DestroyTexture(r.sheetTex)
		r.sheetTex = nil
	}
	if r.sampler != nil {
		r.device.DestroySampler(r.sampler)
		r.sampler = nil
	}
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.bindLayout != nil {
		r.device.DestroyBindGroupLayout(r.bindLayout)
		r.bindLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
	r.destroyed = true
}

// spriteVertexLayout returns the vertex buffer layout for the sprite
// pipeline. Matches VertexInput in sprite.wgsl:
//
//	location 0: position (vec2<f32>)
//	location 1: tex_coords (vec2<f32>)
func spriteVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: mesh.Stride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // tex_coords
			},
		},
	}
}

// tightPixels returns the sheet's pixels with rows packed to width*4 bytes.
// Subimages carry a wider stride than their bounds; WriteTexture wants
// tightly packed rows.
func tightPixels(img *image.RGBA) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if img.Stride == w*4 && bounds.Min == (image.Point{}) {
		return img.Pix
	}
	packed := make([]byte, w*h*4)
	for row := 0; row < h; row++ {
		src := img.PixOffset(bounds.Min.X, bounds.Min.Y+row)
		copy(packed[row*w*4:(row+1)*w*4], img.Pix[src:src+w*4])
	}
	return packed
}
