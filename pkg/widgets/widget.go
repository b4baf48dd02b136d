package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	sdialog "github.com/sqweek/dialog"
)

// SelectFile opens a native file dialog and hands the chosen file to cb on
// the fyne thread. Cancel is not an error.
func SelectFile(cb func(r fyne.URIReadCloser), desc string, exts ...string) {
	go func() {
		filename, err := sdialog.File().Filter(desc, exts...).Load()
		if err != nil {
			if err.Error() == "Cancelled" {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		uri := storage.NewFileURI(filename)
		r, err := storage.Reader(uri)
		if err != nil {
			fyne.LogError("Error reading file", err)
			return
		}
		fyne.Do(func() { cb(r) })
	}()
}

// SelectFilename is SelectFile for callers that only need the path.
func SelectFilename(cb func(filename string), desc string, exts ...string) {
	go func() {
		filename, err := sdialog.File().Filter(desc, exts...).Load()
		if err != nil {
			if err.Error() == "Cancelled" {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		fyne.Do(func() { cb(filename) })
	}()
}
