package export

import "path/filepath"

const (
	AndroidResDir   = "android/app/src/main/res"
	LauncherFile    = "ic_launcher.png"
	LargeIconDir    = "assets/icons"
	LargeIconFile   = "app_icon_512.png"
	LargeIconSizePx = 512
)

// Target is one icon file to produce.
type Target struct {
	Name   string // density bucket, or "large"
	Dir    string // relative to the output root
	File   string
	SizePx int
}

// Path returns the target's file path relative to the output root.
func (t Target) Path() string {
	return filepath.Join(t.Dir, t.File)
}

func mipmap(density string, sizePx int) Target {
	return Target{
		Name:   density,
		Dir:    filepath.Join(AndroidResDir, "mipmap-"+density),
		File:   LauncherFile,
		SizePx: sizePx,
	}
}

// Targets lists every exported file in write order: the Android launcher
// densities smallest first, then the large general-purpose icon.
var Targets = []Target{
	mipmap("mdpi", 48),
	mipmap("hdpi", 72),
	mipmap("xhdpi", 96),
	mipmap("xxhdpi", 144),
	mipmap("xxxhdpi", 192),
	{Name: "large", Dir: LargeIconDir, File: LargeIconFile, SizePx: LargeIconSizePx},
}
