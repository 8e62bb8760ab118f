package main

import (
	"context"
	"embed"

	"sheetlens/app"
	"sheetlens/app/settings"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Create an instance of the app structure
	appInstance := app.NewApp()
	settingsService := settings.NewSettingsService()

	AppMenu := menu.NewMenu()

	FileMenu := AppMenu.AddSubmenu("File")
	FileMenu.AddText("Open Workbook", keys.CmdOrCtrl("o"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:open")
		}
	})
	FileMenu.AddText("Export", keys.CmdOrCtrl("e"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:export")
		}
	})
	FileMenu.AddSeparator()
	FileMenu.AddText("Copy Visible Rows", keys.CmdOrCtrl("c"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:copyVisible")
		}
	})
	FileMenu.AddSeparator()
	FileMenu.AddText("Reset Session", nil, func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:reset")
		}
	})
	FileMenu.AddText("Settings", keys.CmdOrCtrl(","), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:settings")
		}
	})

	ViewMenu := AppMenu.AddSubmenu("View")
	searchMenuItem := ViewMenu.AddText("Toggle Search", keys.CmdOrCtrl("f"), nil)
	searchMenuItem.OnClick(func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:toggleSearch")
		}
	})

	// Get saved window size or use defaults
	width, height, err := appInstance.GetSavedWindowSize()
	if err != nil {
		println("Warning: Failed to get saved window size, using defaults:", err.Error())
		width, height = 1024, 768
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:     "SheetLens",
		Width:     width,
		Height:    height,
		Menu:      AppMenu,
		MinWidth:  400,
		MinHeight: 300,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 250, G: 250, B: 250, A: 1},
		OnStartup: func(ctx context.Context) {
			appInstance.Startup(ctx)
			settingsService.Startup(ctx)
		},
		Bind: []interface{}{
			appInstance,
			settingsService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
