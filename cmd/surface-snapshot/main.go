// Command surface-snapshot renders the widget set headlessly and
// writes the result as a PNG, for theme previews and visual diffing.
//
// Usage:
//
//	surface-snapshot [-theme surface.yaml] [-o snapshot.png] [-open]
package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/go-drift/surface/pkg/events"
	"github.com/go-drift/surface/pkg/graphics"
	"github.com/go-drift/surface/pkg/render"
	"github.com/go-drift/surface/pkg/theme"
	"github.com/go-drift/surface/pkg/widget"
	"github.com/go-drift/surface/pkg/widgets"
)

const usage = `surface-snapshot renders the widget set to a PNG.

Usage: surface-snapshot [flags]

Flags:
  -theme <path>   apply a theme file before rendering
  -o <path>       output file (default snapshot.png)
  -open           render the drop menu open with a hovered row
  -h, --help      show this help
`

type options struct {
	themePath string
	outPath   string
	open      bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "surface-snapshot:", err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if opts == nil {
		fmt.Print(usage)
		return
	}
	if err := run(*opts); err != nil {
		fmt.Fprintln(os.Stderr, "surface-snapshot:", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (*options, error) {
	opts := &options{outPath: "snapshot.png"}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help", "help":
			return nil, nil
		case "-theme":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-theme requires a path")
			}
			opts.themePath = args[i]
		case "-o":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-o requires a path")
			}
			opts.outPath = args[i]
		case "-open":
			opts.open = true
		default:
			return nil, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

// scene is one widget's drawing surface plus where it lands in the
// composite.
type scene struct {
	canvas *render.ImageCanvas
	at     image.Point
}

func run(opts options) error {
	th := &theme.Theme{}
	if opts.themePath != "" {
		loaded, err := theme.Load(opts.themePath)
		if err != nil {
			return err
		}
		th = loaded
	}

	dispatcher := events.NewDispatcher()
	var scenes []scene

	// Slider at the left edge.
	sliderOpts := th.ApplySlider(widgets.SliderOptions{Val: 96})
	sliderBounds := graphics.RectFromLTWH(20, 20, widgets.DefaultSliderWidth, widgets.DefaultSliderHeight)
	sliderCanvas := render.NewImageCanvas(sliderBounds.Size())
	scenes = append(scenes, scene{sliderCanvas, image.Pt(20, 20)})

	_, err := widgets.NewSlider(newEnv(dispatcher, sliderCanvas, sliderBounds, &scenes), sliderOpts)
	if err != nil {
		return err
	}

	// Drop menu to the right of the slider.
	menuOpts := th.ApplyDropMenu(widgets.DropMenuOptions{
		MenuItems:       []string{"sine", "square", "saw", "noise"},
		SelectedItemNum: 1,
	})
	menuBounds := graphics.RectFromLTWH(100, 20, 120, 26)
	menuCanvas := render.NewImageCanvas(menuBounds.Size())
	scenes = append(scenes, scene{menuCanvas, image.Pt(100, 20)})

	menu, err := widgets.NewDropMenu(newEnv(dispatcher, menuCanvas, menuBounds, &scenes), menuOpts)
	if err != nil {
		return err
	}

	if opts.open {
		// Drive the menu through the dispatcher the way a real
		// pointer would: press the box, hover the third row.
		boxCenter := menuBounds.Center()
		dispatcher.Dispatch(events.PointerEvent{
			PointerID: 1, Position: boxCenter, Phase: events.PointerPhaseDown,
		})
		dispatcher.Dispatch(events.PointerEvent{
			PointerID: 1,
			Position: graphics.Offset{
				X: menuBounds.Left + 10,
				Y: menuBounds.Bottom + 2.5*menu.RowHeight(),
			},
			Phase: events.PointerPhaseMove,
		})
	}

	return writeComposite(opts.outPath, scenes)
}

// newEnv wires a widget to the shared dispatcher, its own canvas,
// and a layer factory that registers overlay surfaces as scenes.
func newEnv(d *events.Dispatcher, canvas *render.ImageCanvas, bounds graphics.Rect, scenes *[]scene) widget.Env {
	return widget.Env{
		Events: d,
		Canvas: canvas,
		Bounds: func() graphics.Rect { return bounds },
		Layers: func(size graphics.Size) render.Layer {
			c := render.NewImageCanvas(size)
			l := &sceneLayer{BasicLayer: render.NewBasicLayer(c), canvas: c, scenes: scenes}
			return l
		},
	}
}

// sceneLayer appends itself to the scene list the first time it is
// shown, at its document bounds.
type sceneLayer struct {
	*render.BasicLayer
	canvas *render.ImageCanvas
	scenes *[]scene
	added  bool
}

func (l *sceneLayer) SetVisible(visible bool) {
	l.BasicLayer.SetVisible(visible)
	if visible && !l.added {
		b := l.BasicLayer.Bounds()
		*l.scenes = append(*l.scenes, scene{l.canvas, image.Pt(int(b.Left), int(b.Top))})
		l.added = true
	}
}

func writeComposite(path string, scenes []scene) error {
	out := image.NewRGBA(image.Rect(0, 0, 300, 220))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	for _, s := range scenes {
		img := s.canvas.Image()
		draw.Draw(out, img.Bounds().Add(s.at), img, image.Point{}, draw.Over)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
