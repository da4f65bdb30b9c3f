// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"qportal/cvar"
)

var (
	RLockPVS        *cvar.Cvar
	RMaxPortalDepth *cvar.Cvar
	RUsePortals     *cvar.Cvar
)

func init() {
	RLockPVS = cvar.MustRegister("r_lockpvs", "0", cvar.CHEAT)
	RMaxPortalDepth = cvar.MustRegister("r_maxportaldepth", "8", cvar.ARCHIVE)
	RUsePortals = cvar.MustRegister("r_useportals", "1", cvar.ARCHIVE)
}
