package windows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/opendash/cardash/pkg/debug"
	dashtheme "github.com/opendash/cardash/pkg/theme"
)

const (
	prefsNeedleColor = "needleColor"
	prefsVisionMode  = "visionMode"
)

type MainWindow struct {
	fyne.Window
	app fyne.App

	tabs *container.AppTabs

	dashboard *DashboardPage
	ac        *ACPage
	music     *MusicPage
	mapPage   *MapPage
	settings  *SettingsPage
}

// NewMainWindow builds the cockpit window. videoFile optionally replaces
// the live webcam on the map tab with a recorded stream.
func NewMainWindow(app fyne.App, videoFile string) *MainWindow {
	mw := &MainWindow{
		Window: app.NewWindow("CAR DASHBOARD"),
		app:    app,
	}

	mw.dashboard = NewDashboardPage()
	mw.ac = NewACPage()
	mw.music = NewMusicPage()
	mw.mapPage = NewMapPage(videoFile)
	mw.settings = NewSettingsPage(mw)
	mw.settings.RestorePreferences()

	mw.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon("DASHBOARD", theme.HomeIcon(), mw.dashboard.Content()),
		container.NewTabItemWithIcon("A/C", dashtheme.SnowflakeIcon(), mw.ac.Content()),
		container.NewTabItemWithIcon("MUSIC", theme.MediaMusicIcon(), mw.music.Content()),
		container.NewTabItemWithIcon("MAP", theme.NavigateNextIcon(), mw.mapPage.Content()),
		container.NewTabItemWithIcon("SETTINGS", theme.SettingsIcon(), mw.settings.Content()),
	)
	mw.tabs.SetTabLocation(container.TabLocationTop)

	// the camera only runs while the map tab is showing
	mw.tabs.OnSelected = func(t *container.TabItem) {
		debug.Log("tab selected: " + t.Text)
		if t.Text == "MAP" {
			mw.mapPage.StartVideo()
		} else {
			mw.mapPage.StopVideo()
		}
	}

	mw.SetCloseIntercept(func() {
		mw.dashboard.Close()
		mw.mapPage.Close()
		mw.music.Close()
		mw.Close()
	})

	return mw
}

func (mw *MainWindow) Layout() fyne.CanvasObject {
	return mw.tabs
}
