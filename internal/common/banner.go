package common

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintBanner displays the importer's startup banner and the resolved
// configuration that will drive this run.
func PrintBanner(config *Config, logger arbor.ILogger) {
	version := LoadVersionFromFile()
	build := GetBuild()

	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetBorderColor(banner.ColorGreen).
		SetTextColor(banner.ColorWhite).
		SetBold(true).
		SetWidth(72)

	fmt.Printf("\n")
	b.PrintTopLine()
	b.PrintCenteredText("LEIIMPORTER")
	b.PrintCenteredText("Brazilian federal law structuring pipeline")
	b.PrintSeparatorLine()
	b.PrintKeyValue("Version", version, 15)
	b.PrintKeyValue("Build", build, 15)
	b.PrintKeyValue("Base URL", config.Acquisition.BaseURL, 15)
	b.PrintKeyValue("Cache dir", config.Cache.Path, 15)
	b.PrintBottomLine()
	fmt.Printf("\n")

	logger.Info().
		Str("version", version).
		Str("build", build).
		Str("base_url", config.Acquisition.BaseURL).
		Str("cache_dir", config.Cache.Path).
		Msg("importer started")
}

// PrintColorizedMessage prints a message with the given color. It does not
// log; the logger argument is unused.
func PrintColorizedMessage(color, message string, logger arbor.ILogger) {
	fmt.Printf("%s%s%s\n", color, message, banner.ColorReset)
}

// PrintSuccess prints a success line in green and logs it.
func PrintSuccess(message string) {
	logger := GetLogger()
	PrintColorizedMessage(banner.ColorGreen, message, logger)
	logger.Info().Str("type", "success").Msg(message)
}

// PrintError prints an error line in red and logs it.
func PrintError(message string) {
	logger := GetLogger()
	PrintColorizedMessage(banner.ColorRed, message, logger)
	logger.Error().Str("type", "error").Msg(message)
}

// PrintWarning prints a warning line in yellow and logs it.
func PrintWarning(message string) {
	logger := GetLogger()
	PrintColorizedMessage(banner.ColorYellow, message, logger)
	logger.Warn().Str("type", "warning").Msg(message)
}
