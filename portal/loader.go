// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"qportal/conlog"
	"qportal/math/vec"
)

// The area/portal lump as the level pipeline emits it. All values are
// little endian.

var lumpMagic = [4]byte{'Q', 'P', 'R', 'T'}

const lumpVersion = 1

type lumpHeader struct {
	Magic      [4]byte
	Version    int32
	NumAreas   int32
	NumPortals int32
}

type lumpArea struct {
	Mins  [3]float32
	Maxs  [3]float32
	Flags uint32
}

const (
	lumpAreaSky     = 1 << 0
	lumpAreaOutside = 1 << 1
)

type lumpPortal struct {
	Areas     [2]int32
	NumPoints int32
}

// LoadLump replaces the system contents with the areas and portals of
// the given lump and rebuilds the area grid. Malformed lump structure
// is an error; individual bad portals are warned about and skipped,
// matching the degraded-but-running construction policy.
func (s *System) LoadLump(data []byte) error {
	r := bytes.NewReader(data)

	var h lumpHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return errors.Wrap(err, "portal lump header")
	}
	if h.Magic != lumpMagic {
		return errors.New("not a portal lump")
	}
	if h.Version != lumpVersion {
		return errors.Errorf("portal lump version %d, want %d", h.Version, lumpVersion)
	}
	if h.NumAreas < 0 || h.NumAreas > MaxAreas {
		return errors.Errorf("portal lump with %d areas", h.NumAreas)
	}
	if h.NumPortals < 0 || h.NumPortals > MaxPortals {
		return errors.Errorf("portal lump with %d portals", h.NumPortals)
	}

	s.Clear()

	for i := int32(0); i < h.NumAreas; i++ {
		var la lumpArea
		if err := binary.Read(r, binary.LittleEndian, &la); err != nil {
			return errors.Wrapf(err, "area %d", i)
		}
		a := s.AddArea(vec.VFromA(la.Mins), vec.VFromA(la.Maxs))
		if a == nil {
			continue
		}
		a.SkyArea = la.Flags&lumpAreaSky != 0
		a.OutsideArea = la.Flags&lumpAreaOutside != 0
	}

	for i := int32(0); i < h.NumPortals; i++ {
		var lp lumpPortal
		if err := binary.Read(r, binary.LittleEndian, &lp); err != nil {
			return errors.Wrapf(err, "portal %d", i)
		}
		if lp.NumPoints < 3 || lp.NumPoints > MaxPortalPoints {
			return errors.Errorf("portal %d with %d points", i, lp.NumPoints)
		}
		points := make([]vec.Vec3, lp.NumPoints)
		for j := range points {
			var pt [3]float32
			if err := binary.Read(r, binary.LittleEndian, &pt); err != nil {
				return errors.Wrapf(err, "portal %d point %d", i, j)
			}
			points[j] = vec.VFromA(pt)
		}
		if p := s.CreatePortal(points, AreaID(lp.Areas[0]), AreaID(lp.Areas[1])); p == nil {
			conlog.Printf("LoadLump: dropped portal %d\n", i)
		}
	}

	s.BuildAreaGrid()
	return nil
}
