package mapdata

import (
	"os"
	"path/filepath"
	"strconv"

	"worldgen/internal/clause"
	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

// VictoryPoint attaches a point value to a province.
type VictoryPoint struct {
	Province wrappers.ProvinceID
	Value    wrappers.VictoryPoints
}

// StateHistory is the scenario-start situation of a state. History blocks
// carry more than this in shipping files; everything else is ignored
// here.
type StateHistory struct {
	Owner         wrappers.CountryTag
	Controller    *wrappers.CountryTag
	VictoryPoints []VictoryPoint
}

// State is one administrative region. Manpower and category repeat in
// shipping files; every occurrence is kept in file order and the game
// reads the last one.
type State struct {
	ID            wrappers.StateID
	Name          wrappers.StateName
	Manpower      []wrappers.Manpower
	StateCategory []wrappers.StateCategoryName
	History       *StateHistory
	Provinces     map[wrappers.ProvinceID]struct{}

	LocalSupplies           *wrappers.LocalSupplies
	Impassable              *bool
	BuildingsMaxLevelFactor *wrappers.BuildingsMaxLevelFactor
}

// States is the state set keyed by id. A state id defined by two files
// keeps the later file's definition.
type States struct {
	States map[wrappers.StateID]State
}

func decodeVictoryPoint(n *clause.Node) (VictoryPoint, error) {
	tokens, err := n.TextItems()
	if err != nil {
		return VictoryPoint{}, err
	}
	if len(tokens) != 2 {
		return VictoryPoint{}, errx.Decodef("victory point needs a province and a value at %s, got %d items", n.Pos(), len(tokens))
	}
	province, err := wrappers.ParseProvinceID(tokens[0])
	if err != nil {
		return VictoryPoint{}, err
	}
	value, err := strconv.ParseInt(tokens[1], 10, 32)
	if err != nil {
		return VictoryPoint{}, errx.Parsef("invalid victory point value %q", tokens[1]).WithCause(err)
	}
	return VictoryPoint{Province: province, Value: wrappers.VictoryPoints(value)}, nil
}

func decodeStateHistory(n *clause.Node) (*StateHistory, error) {
	if err := requireObject(n); err != nil {
		return nil, err
	}
	owner, err := n.TextAt("owner")
	if err != nil {
		return nil, err
	}
	h := &StateHistory{Owner: wrappers.CountryTag(owner)}
	controller, found, err := n.Lookup("controller")
	if err != nil {
		return nil, err
	}
	if found {
		tag, err := controller.Text()
		if err != nil {
			return nil, err
		}
		t := wrappers.CountryTag(tag)
		h.Controller = &t
	}
	for _, vn := range n.GetAll("victory_points") {
		vp, err := decodeVictoryPoint(vn)
		if err != nil {
			return nil, err
		}
		h.VictoryPoints = append(h.VictoryPoints, vp)
	}
	return h, nil
}

func decodeState(n *clause.Node) (State, error) {
	id, err := int32At(n, "id")
	if err != nil {
		return State{}, err
	}
	name, err := n.TextAt("name")
	if err != nil {
		return State{}, err
	}
	st := State{
		ID:   wrappers.StateID(id),
		Name: wrappers.StateName(name),
	}
	for _, mn := range n.GetAll("manpower") {
		v, err := mn.Int()
		if err != nil {
			return State{}, err
		}
		st.Manpower = append(st.Manpower, wrappers.Manpower(v))
	}
	for _, cn := range n.GetAll("state_category") {
		s, err := cn.Text()
		if err != nil {
			return State{}, err
		}
		st.StateCategory = append(st.StateCategory, wrappers.StateCategoryName(s))
	}
	provNode, err := n.Get("provinces")
	if err != nil {
		return State{}, err
	}
	ids, err := provinceList(provNode)
	if err != nil {
		return State{}, err
	}
	st.Provinces = make(map[wrappers.ProvinceID]struct{}, len(ids))
	for _, id := range ids {
		st.Provinces[id] = struct{}{}
	}
	history, found, err := n.Lookup("history")
	if err != nil {
		return State{}, err
	}
	if found {
		if st.History, err = decodeStateHistory(history); err != nil {
			return State{}, err
		}
	}
	supplies, found, err := n.Lookup("local_supplies")
	if err != nil {
		return State{}, err
	}
	if found {
		v, err := supplies.Float()
		if err != nil {
			return State{}, err
		}
		ls := wrappers.LocalSupplies(v)
		st.LocalSupplies = &ls
	}
	impassable, found, err := n.Lookup("impassable")
	if err != nil {
		return State{}, err
	}
	if found {
		v, err := impassable.Bool()
		if err != nil {
			return State{}, err
		}
		st.Impassable = &v
	}
	factor, found, err := n.Lookup("buildings_max_level_factor")
	if err != nil {
		return State{}, err
	}
	if found {
		v, err := factor.Float()
		if err != nil {
			return State{}, err
		}
		f := wrappers.BuildingsMaxLevelFactor(v)
		st.BuildingsMaxLevelFactor = &f
	}
	return st, nil
}

func loadStateFile(path string) (State, error) {
	root, err := clause.ParseFile(path)
	if err != nil {
		return State{}, err
	}
	body, err := root.Get("state")
	if err != nil {
		return State{}, attach(err, path)
	}
	st, err := decodeState(body)
	if err != nil {
		return State{}, attach(err, path)
	}
	return st, nil
}

// LoadStates reads every state file of dir. State files carry no naming
// convention; any file failing to load fails the directory.
func LoadStates(dir string) (*States, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errx.IO("read states directory").WithPath(dir).WithCause(err)
	}
	states := make(map[wrappers.StateID]State, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		st, err := loadStateFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		states[st.ID] = st
	}
	return &States{States: states}, nil
}
