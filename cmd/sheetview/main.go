// Command sheetview previews the generated character sprite sheets, every
// clip animating side by side, or writes them out as PNG files.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/STAR-FALL-00/work-hours-timer/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const cellGap = 8

type demoGame struct {
	rows  [][]*render.Animation
	names []string
	scale float64
}

func newDemoGame(scale float64) *demoGame {
	g := &demoGame{names: render.ClipNames(), scale: scale}
	for _, actor := range []common.Actor{common.Hero, common.Boss} {
		sheet := ebiten.NewImageFromImage(render.Sheet(actor))
		row := make([]*render.Animation, len(g.names))
		for i, name := range g.names {
			row[i] = render.NewAnimation(sheet, name)
		}
		g.rows = append(g.rows, row)
	}
	return g
}

func (g *demoGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	// space replays the one-shot clips
	restart := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	for _, row := range g.rows {
		for _, a := range row {
			if restart {
				a.Reset()
			}
			a.Update()
		}
	}
	return nil
}

func (g *demoGame) cell() float64 {
	return render.FrameSize*g.scale + cellGap
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	cell := g.cell()
	for r, row := range g.rows {
		for i, a := range row {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(g.scale, g.scale)
			op.GeoM.Translate(cellGap+float64(i)*cell, 24+float64(r)*(cell+16))
			a.Draw(screen, op)
		}
	}
	for i, name := range g.names {
		ebitenutil.DebugPrintAt(screen, name, cellGap+int(float64(i)*cell), 4)
	}
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	cell := g.cell()
	return int(cellGap + float64(len(g.names))*cell), int(24 + 2*(cell+16))
}

func writeSheets(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, actor := range []common.Actor{common.Hero, common.Boss} {
		path := filepath.Join(dir, actor.String()+"-Sheet.png")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, render.Sheet(actor)); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}

func main() {
	out := flag.String("out", "", "write the sheets as PNG files into this directory and exit")
	scale := flag.Float64("scale", 3, "preview scale")
	flag.Parse()

	if *out != "" {
		if err := writeSheets(*out); err != nil {
			log.Fatal(err)
		}
		return
	}

	g := newDemoGame(*scale)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Sprite Sheets")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
