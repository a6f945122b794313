// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"log/slog"

	"godoom/cvar"
	"godoom/light"
	"godoom/lightanim"
)

var (
	Developer         *cvar.Cvar
	HostFrameRate     *cvar.Cvar
	HostMaxFps        *cvar.Cvar
	HostTimeScale     *cvar.Cvar
	RFlatLightEffects *cvar.Cvar
	RLightContrast    *cvar.Cvar
)

func init() {
	Developer = cvar.MustRegister("developer", "0", cvar.NONE)
	HostFrameRate = cvar.MustRegister("host_framerate", "0", cvar.NONE)
	HostMaxFps = cvar.MustRegister("host_maxfps", "72", cvar.ARCHIVE)
	HostTimeScale = cvar.MustRegister("host_timescale", "0", cvar.NONE)
	RFlatLightEffects = cvar.MustRegister("r_flatlighteffects", "0", cvar.ARCHIVE)
	RLightContrast = cvar.MustRegister("r_lightcontrast", "0", cvar.ARCHIVE)

	Developer.SetCallback(func(cv *cvar.Cvar) {
		if cv.Bool() {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		} else {
			slog.SetLogLoggerLevel(slog.LevelInfo)
		}
	})
}

// LightContrast maps r_lightcontrast to a contrast, negative darkens and
// positive brightens.
func LightContrast() light.Contrast {
	switch v := RLightContrast.Value(); {
	case v < 0:
		return light.Darken
	case v > 0:
		return light.Brighten
	}
	return light.None
}

// LightMode maps r_flatlighteffects to an evaluation mode.
func LightMode() lightanim.Mode {
	switch int(RFlatLightEffects.Value()) {
	case 1:
		return lightanim.Average
	case 2:
		return lightanim.Peak
	}
	return lightanim.Animate
}
