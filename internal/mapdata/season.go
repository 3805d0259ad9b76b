package mapdata

import (
	"worldgen/internal/clause"
	"worldgen/internal/wrappers"
)

// Season is the palette shift of one calendar season: its date range and
// the HSV plus color balance applied to the northern, equatorial and
// southern bands of the map.
type Season struct {
	StartDate          wrappers.GameDate
	EndDate            wrappers.GameDate
	HSVNorth           wrappers.HSV
	ColorBalanceNorth  wrappers.HSV
	HSVCenter          wrappers.HSV
	ColorBalanceCenter wrappers.HSV
	HSVSouth           wrappers.HSV
	ColorBalanceSouth  wrappers.HSV
}

// TreeSeason is the date window of one tree sprite transition.
type TreeSeason struct {
	StartDate wrappers.GameDate
	EndDate   wrappers.GameDate
}

// Seasons holds the four seasons and the eight tree transition windows.
type Seasons struct {
	Winter Season
	Spring Season
	Summer Season
	Autumn Season

	TreeWinter  TreeSeason
	TreeWinter2 TreeSeason
	TreeSpring  TreeSeason
	TreeSpring2 TreeSeason
	TreeSummer  TreeSeason
	TreeSummer2 TreeSeason
	TreeAutumn  TreeSeason
	TreeAutumn2 TreeSeason
}

func dateAt(n *clause.Node, key string) (wrappers.GameDate, error) {
	s, err := n.TextAt(key)
	if err != nil {
		return wrappers.GameDate{}, err
	}
	return wrappers.ParseGameDate(s)
}

func hsvAt(n *clause.Node, key string) (wrappers.HSV, error) {
	arr, err := n.Get(key)
	if err != nil {
		return wrappers.HSV{}, err
	}
	vals, err := floatList(arr, 3)
	if err != nil {
		return wrappers.HSV{}, err
	}
	return wrappers.HSV{H: vals[0], S: vals[1], V: vals[2]}, nil
}

func decodeSeason(n *clause.Node) (Season, error) {
	var s Season
	var err error
	if s.StartDate, err = dateAt(n, "start_date"); err != nil {
		return Season{}, err
	}
	if s.EndDate, err = dateAt(n, "end_date"); err != nil {
		return Season{}, err
	}
	if s.HSVNorth, err = hsvAt(n, "hsv_north"); err != nil {
		return Season{}, err
	}
	if s.ColorBalanceNorth, err = hsvAt(n, "colorbalance_north"); err != nil {
		return Season{}, err
	}
	if s.HSVCenter, err = hsvAt(n, "hsv_center"); err != nil {
		return Season{}, err
	}
	if s.ColorBalanceCenter, err = hsvAt(n, "colorbalance_center"); err != nil {
		return Season{}, err
	}
	if s.HSVSouth, err = hsvAt(n, "hsv_south"); err != nil {
		return Season{}, err
	}
	if s.ColorBalanceSouth, err = hsvAt(n, "colorbalance_south"); err != nil {
		return Season{}, err
	}
	return s, nil
}

func decodeTreeSeason(n *clause.Node) (TreeSeason, error) {
	var t TreeSeason
	var err error
	if t.StartDate, err = dateAt(n, "start_date"); err != nil {
		return TreeSeason{}, err
	}
	if t.EndDate, err = dateAt(n, "end_date"); err != nil {
		return TreeSeason{}, err
	}
	return t, nil
}

// LoadSeasons reads the season palette file. All twelve blocks are
// required.
func LoadSeasons(path string) (*Seasons, error) {
	root, err := clause.ParseFile(path)
	if err != nil {
		return nil, err
	}
	s := &Seasons{}
	seasons := []struct {
		key string
		dst *Season
	}{
		{"winter", &s.Winter},
		{"spring", &s.Spring},
		{"summer", &s.Summer},
		{"autumn", &s.Autumn},
	}
	for _, item := range seasons {
		n, err := root.Get(item.key)
		if err != nil {
			return nil, attach(err, path)
		}
		if *item.dst, err = decodeSeason(n); err != nil {
			return nil, attach(err, path)
		}
	}
	trees := []struct {
		key string
		dst *TreeSeason
	}{
		{"tree_winter", &s.TreeWinter},
		{"tree_winter2", &s.TreeWinter2},
		{"tree_spring", &s.TreeSpring},
		{"tree_spring2", &s.TreeSpring2},
		{"tree_summer", &s.TreeSummer},
		{"tree_summer2", &s.TreeSummer2},
		{"tree_autumn", &s.TreeAutumn},
		{"tree_autumn2", &s.TreeAutumn2},
	}
	for _, item := range trees {
		n, err := root.Get(item.key)
		if err != nil {
			return nil, attach(err, path)
		}
		if *item.dst, err = decodeTreeSeason(n); err != nil {
			return nil, attach(err, path)
		}
	}
	return s, nil
}

func encodeHSV(v wrappers.HSV) *clause.Node {
	return clause.Array(
		clause.ScalarFloat(v.H),
		clause.ScalarFloat(v.S),
		clause.ScalarFloat(v.V),
	)
}

func encodeSeason(s Season) *clause.Node {
	return clause.Object(
		clause.F("start_date", clause.Scalar(s.StartDate.String())),
		clause.F("end_date", clause.Scalar(s.EndDate.String())),
		clause.F("hsv_north", encodeHSV(s.HSVNorth)),
		clause.F("colorbalance_north", encodeHSV(s.ColorBalanceNorth)),
		clause.F("hsv_center", encodeHSV(s.HSVCenter)),
		clause.F("colorbalance_center", encodeHSV(s.ColorBalanceCenter)),
		clause.F("hsv_south", encodeHSV(s.HSVSouth)),
		clause.F("colorbalance_south", encodeHSV(s.ColorBalanceSouth)),
	)
}

func encodeTreeSeason(t TreeSeason) *clause.Node {
	return clause.Object(
		clause.F("start_date", clause.Scalar(t.StartDate.String())),
		clause.F("end_date", clause.Scalar(t.EndDate.String())),
	)
}

// EncodeSeasons builds the clause document for a season palette, the
// inverse of LoadSeasons up to formatting.
func EncodeSeasons(s *Seasons) *clause.Node {
	return clause.Object(
		clause.F("winter", encodeSeason(s.Winter)),
		clause.F("spring", encodeSeason(s.Spring)),
		clause.F("summer", encodeSeason(s.Summer)),
		clause.F("autumn", encodeSeason(s.Autumn)),
		clause.F("tree_winter", encodeTreeSeason(s.TreeWinter)),
		clause.F("tree_winter2", encodeTreeSeason(s.TreeWinter2)),
		clause.F("tree_spring", encodeTreeSeason(s.TreeSpring)),
		clause.F("tree_spring2", encodeTreeSeason(s.TreeSpring2)),
		clause.F("tree_summer", encodeTreeSeason(s.TreeSummer)),
		clause.F("tree_summer2", encodeTreeSeason(s.TreeSummer2)),
		clause.F("tree_autumn", encodeTreeSeason(s.TreeAutumn)),
		clause.F("tree_autumn2", encodeTreeSeason(s.TreeAutumn2)),
	)
}
