package main

import (
	"image"
	"image/color"
	"log"
	"os"

	"keycalc/app/calc"
	"keycalc/app/config"
	"keycalc/app/logger"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	windowBg  = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	displayBg = color.NRGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xFF}
)

func main() {
	cfg, err := config.Load(os.Getenv("KEYCALC_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	lg, err := logger.New(logger.ParseLevel(cfg.LogLevel), logPath, "gui")
	if err != nil {
		log.Printf("Logging disabled: %v", err)
		lg = logger.Discard()
	}
	logger.SetGlobal(lg)

	go func() {
		w := new(app.Window)
		w.Option(app.Title("keycalc"), app.Size(unit.Dp(760), unit.Dp(560)))
		if err := run(w, cfg, lg); err != nil {
			log.Fatal(err)
		}
		lg.Close()
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window, cfg *config.Config, lg *logger.Logger) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Face = "Go Mono"
	th.TextSize = unit.Sp(cfg.TextSize)

	cs := NewCalcState(lg)
	registerWebCallbacks(cs, w)
	expl := explorer.NewExplorer(w)
	keypad := NewKeypad()
	tape := NewTapePanel()
	var divider DragDivider
	tapeWidth := 0 // set from the window width on the first frame

	// Replay a keystroke script given on the command line
	if len(os.Args) > 1 {
		if err := cs.LoadScript(os.Args[1]); err != nil {
			log.Printf("Failed to replay %s: %v", os.Args[1], err)
		}
	}

	var shortcutTag = new(bool)
	var inputTag = new(bool)
	var openCh <-chan ScriptResult
	var saveCh <-chan SaveResult

	// Channel-forward pattern for explorer compatibility
	events := make(chan event.Event)
	acks := make(chan struct{})
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()

	w.Option(app.Title(cs.Title()))

	var ops op.Ops
	for {
		select {
		case result := <-openCh:
			openCh = nil
			switch {
			case result.Canceled():
			case result.Err != nil:
				lg.Warn("open script: %v", result.Err)
			default:
				lg.Info("replaying %s", result.Name)
				if err := cs.ReplayScript(result.Data); err != nil {
					lg.Warn("replay script: %v", err)
				}
			}
			w.Option(app.Title(cs.Title()))
			w.Invalidate()

		case result := <-saveCh:
			saveCh = nil
			switch {
			case result.Canceled():
			case result.Err != nil:
				lg.Warn("%v", result.Err)
			default:
				lg.Info("saved %d bytes of tape to %s", result.Bytes, result.Path)
				cs.MarkSaved(result.Path)
				w.Option(app.Title(cs.Title()))
			}
			w.Invalidate()

		case e := <-events:
			expl.ListenEvents(e)
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				return e.Err
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				windowW := gtx.Constraints.Max.X
				if tapeWidth == 0 {
					tapeWidth = windowW / 3
				}
				dirty := cs.Dirty

				// Handle keyboard shortcuts
				event.Op(gtx.Ops, shortcutTag)
				for {
					ev, ok := gtx.Event(
						key.Filter{Required: key.ModShortcut, Name: "O"},
						key.Filter{Required: key.ModShortcut, Name: "S"},
						key.Filter{Required: key.ModShortcut, Name: "="},
						key.Filter{Required: key.ModShortcut, Name: "-"},
					)
					if !ok {
						break
					}
					ke, ok := ev.(key.Event)
					if !ok || ke.State != key.Press {
						continue
					}
					switch ke.Name {
					case "O":
						if openCh == nil {
							openCh = OpenScriptAsync(expl)
						}
					case "S":
						if saveCh == nil {
							if cs.TapePath != "" {
								if err := cs.SaveTape(cs.TapePath); err != nil {
									lg.Error("%v", err)
								}
							} else {
								saveCh = SaveTapeAsync(expl, cs.TapeBytes(), "tape.txt")
							}
						}
					case "=": // Cmd+= (Cmd+Plus)
						if th.TextSize < unit.Sp(48) {
							th.TextSize += unit.Sp(2)
						}
					case "-": // Cmd+-
						if th.TextSize > unit.Sp(8) {
							th.TextSize -= unit.Sp(2)
						}
					}
				}

				// Typed keys go to the calculator
				event.Op(gtx.Ops, inputTag)
				if !gtx.Focused(inputTag) {
					gtx.Execute(key.FocusCmd{Tag: inputTag})
				}
				for {
					ev, ok := gtx.Event(
						key.FocusFilter{Target: inputTag},
						key.Filter{Focus: inputTag, Name: key.NameReturn},
						key.Filter{Focus: inputTag, Name: key.NameEnter},
						key.Filter{Focus: inputTag, Name: key.NameDeleteBackward},
						key.Filter{Focus: inputTag, Name: key.NameEscape},
					)
					if !ok {
						break
					}
					switch ev := ev.(type) {
					case key.EditEvent:
						for _, r := range ev.Text {
							if label, ok := calc.KeyForRune(r); ok {
								cs.Press(label)
							}
						}
					case key.Event:
						if ev.State != key.Press {
							break
						}
						switch ev.Name {
						case key.NameReturn, key.NameEnter:
							cs.Press(calc.KeyCompute)
						case key.NameDeleteBackward:
							cs.Press(calc.KeyBackspace)
						case key.NameEscape:
							cs.Press(calc.KeyClear)
						}
					}
				}

				keypad.Update(gtx, cs.Press)
				if cs.Dirty != dirty {
					w.Option(app.Title(cs.Title()))
				}

				paint.FillShape(gtx.Ops, windowBg, clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())

				// Layout: display over keypad | divider | tape
				layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Flexed(1, func(gtx C) D {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(func(gtx C) D {
								return layoutDisplay(gtx, th, cs.Display())
							}),
							layout.Flexed(1, func(gtx C) D {
								return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
									return keypad.Layout(gtx, th)
								})
							}),
						)
					}),
					layout.Rigid(func(gtx C) D {
						return divider.Layout(gtx, &tapeWidth, windowW, windowW/3)
					}),
					layout.Rigid(func(gtx C) D {
						return tape.Layout(gtx, th, cs.Session.Tape(), tapeWidth)
					}),
				)

				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}

// layoutDisplay draws the colored display text right-aligned in a strip
// across the top of the calculator.
func layoutDisplay(gtx C, th *material.Theme, display string) D {
	height := gtx.Dp(unit.Dp(72))
	width := gtx.Constraints.Max.X
	paint.FillShape(gtx.Ops, displayBg, clip.Rect(image.Rect(0, 0, width, height)).Op())

	gtx.Constraints = layout.Exact(image.Pt(width, height))
	defer clip.Rect(image.Rect(0, 0, width, height)).Push(gtx.Ops).Pop()

	tokens := Tokenize(display)
	children := make([]layout.FlexChild, 0, len(tokens))
	for _, tok := range tokens {
		tok := tok
		children = append(children, layout.Rigid(func(gtx C) D {
			lbl := material.Label(th, th.TextSize*1.8, tok.Text)
			lbl.Color = TokenColor(tok.Kind)
			lbl.Font = font.Font{Typeface: "Go Mono"}
			lbl.MaxLines = 1
			return lbl.Layout(gtx)
		}))
	}
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}
