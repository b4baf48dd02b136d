package main

import (
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/opendash/cardash/pkg/assets"
	"github.com/opendash/cardash/pkg/debug"
	"github.com/opendash/cardash/pkg/sim"
	"github.com/opendash/cardash/pkg/sound"
	"github.com/opendash/cardash/pkg/theme"
	"github.com/opendash/cardash/pkg/windows"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	videoFile := flag.String("play-video", "", "path to a video file to play instead of the camera")
	flag.Parse()

	a := app.NewWithID("com.opendash.cardash")
	a.Settings().SetTheme(&theme.DashTheme{})
	a.SetIcon(fyne.NewStaticResource("logo.svg", assets.LogoBytes))

	go func() {
		if err := sound.Init(); err != nil {
			log.Println(err)
		}
	}()

	simulator := sim.New()
	simulator.Start()
	defer simulator.Stop()
	defer debug.Close()

	mw := windows.NewMainWindow(a, *videoFile)
	mw.SetMaster()
	mw.Resize(fyne.NewSize(1024, 600))
	mw.SetContent(mw.Layout())
	mw.ShowAndRun()
}
