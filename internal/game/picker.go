package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wave-animation/internal/colors"
)

type colorPick struct {
	hex string
	err error
}

// picker runs the native color dialog off the game loop. At most one dialog
// is open; results come back through a channel polled from Update.
type picker struct {
	open    bool
	results chan colorPick
}

func newPicker() *picker {
	return &picker{results: make(chan colorPick, 1)}
}

// show opens the dialog seeded with initialHex.
func (p *picker) show(initialHex string) {
	if p.open {
		return
	}
	p.open = true

	r, g, b, _ := colors.ParseRGB(colors.HexToRGB(initialHex))
	seed := color.NRGBA{R: r, G: g, B: b, A: 0xff}
	go func() {
		c, err := zenity.SelectColor(
			zenity.Title("Base color"),
			zenity.Color(seed),
		)
		if err != nil {
			p.results <- colorPick{err: err}
			return
		}
		p.results <- colorPick{hex: hexOf(c)}
	}()
}

// poll returns a picked color once the dialog closes. A canceled dialog
// yields ok == false and no error.
func (p *picker) poll() (hex string, ok bool, err error) {
	select {
	case res := <-p.results:
		p.open = false
		if res.err != nil {
			if errors.Is(res.err, zenity.ErrCanceled) {
				return "", false, nil
			}
			return "", false, res.err
		}
		return res.hex, true, nil
	default:
		return "", false, nil
	}
}

func hexOf(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
