package mapdata

import (
	"sort"
	"strconv"

	"worldgen/internal/clause"
	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

// AdjacencyLogic says which traffic a rule passes in one diplomatic
// situation.
type AdjacencyLogic struct {
	Army      bool
	Navy      bool
	Submarine bool
	Trade     bool
}

// IsDisabled marks a rule as off at scenario start, with a tooltip key
// explaining why.
type IsDisabled struct {
	Tooltip string
}

// AdjacencyRule is a named special crossing such as a canal or strait.
type AdjacencyRule struct {
	Name              wrappers.AdjacencyRuleName
	Contested         AdjacencyLogic
	Enemy             AdjacencyLogic
	Friend            AdjacencyLogic
	Neutral           AdjacencyLogic
	RequiredProvinces []wrappers.ProvinceID
	Icon              wrappers.Icon
	Offset            []int32
	IsDisabled        *IsDisabled
}

// AdjacencyRules is the rule set keyed by name. A name declared twice
// keeps its later definition.
type AdjacencyRules struct {
	Rules map[wrappers.AdjacencyRuleName]AdjacencyRule
}

func decodeAdjacencyLogic(n *clause.Node) (AdjacencyLogic, error) {
	army, err := n.BoolAt("army")
	if err != nil {
		return AdjacencyLogic{}, err
	}
	navy, err := n.BoolAt("navy")
	if err != nil {
		return AdjacencyLogic{}, err
	}
	submarine, err := n.BoolAt("submarine")
	if err != nil {
		return AdjacencyLogic{}, err
	}
	trade, err := n.BoolAt("trade")
	if err != nil {
		return AdjacencyLogic{}, err
	}
	return AdjacencyLogic{Army: army, Navy: navy, Submarine: submarine, Trade: trade}, nil
}

func logicAt(n *clause.Node, key string) (AdjacencyLogic, error) {
	v, err := n.Get(key)
	if err != nil {
		return AdjacencyLogic{}, err
	}
	return decodeAdjacencyLogic(v)
}

func int32List(n *clause.Node) ([]int32, error) {
	tokens, err := n.TextItems()
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, errx.Parsef("invalid integer %q", tok).WithCause(err)
		}
		out[i] = int32(v)
	}
	return out, nil
}

func decodeAdjacencyRule(n *clause.Node) (AdjacencyRule, error) {
	name, err := n.TextAt("name")
	if err != nil {
		return AdjacencyRule{}, err
	}
	contested, err := logicAt(n, "contested")
	if err != nil {
		return AdjacencyRule{}, err
	}
	enemy, err := logicAt(n, "enemy")
	if err != nil {
		return AdjacencyRule{}, err
	}
	friend, err := logicAt(n, "friend")
	if err != nil {
		return AdjacencyRule{}, err
	}
	neutral, err := logicAt(n, "neutral")
	if err != nil {
		return AdjacencyRule{}, err
	}
	reqNode, err := n.Get("required_provinces")
	if err != nil {
		return AdjacencyRule{}, err
	}
	required, err := provinceList(reqNode)
	if err != nil {
		return AdjacencyRule{}, err
	}
	icon, err := int32At(n, "icon")
	if err != nil {
		return AdjacencyRule{}, err
	}
	offsetNode, err := n.Get("offset")
	if err != nil {
		return AdjacencyRule{}, err
	}
	offset, err := int32List(offsetNode)
	if err != nil {
		return AdjacencyRule{}, err
	}
	rule := AdjacencyRule{
		Name:              wrappers.AdjacencyRuleName(name),
		Contested:         contested,
		Enemy:             enemy,
		Friend:            friend,
		Neutral:           neutral,
		RequiredProvinces: required,
		Icon:              wrappers.Icon(icon),
		Offset:            offset,
	}
	disabled, found, err := n.Lookup("is_disabled")
	if err != nil {
		return AdjacencyRule{}, err
	}
	if found {
		tooltip, err := disabled.TextAt("tooltip")
		if err != nil {
			return AdjacencyRule{}, err
		}
		rule.IsDisabled = &IsDisabled{Tooltip: tooltip}
	}
	return rule, nil
}

// LoadAdjacencyRules reads the repeated adjacency_rule blocks into a set
// keyed by rule name.
func LoadAdjacencyRules(path string) (*AdjacencyRules, error) {
	root, err := clause.ParseFile(path)
	if err != nil {
		return nil, err
	}
	nodes := root.GetAll("adjacency_rule")
	rules := make(map[wrappers.AdjacencyRuleName]AdjacencyRule, len(nodes))
	for _, n := range nodes {
		rule, err := decodeAdjacencyRule(n)
		if err != nil {
			return nil, attach(err, path)
		}
		rules[rule.Name] = rule
	}
	return &AdjacencyRules{Rules: rules}, nil
}

func encodeLogic(l AdjacencyLogic) *clause.Node {
	return clause.Object(
		clause.F("army", clause.ScalarBool(l.Army)),
		clause.F("navy", clause.ScalarBool(l.Navy)),
		clause.F("submarine", clause.ScalarBool(l.Submarine)),
		clause.F("trade", clause.ScalarBool(l.Trade)),
	)
}

// EncodeAdjacencyRule builds the clause tree for one rule, the inverse of
// the decoder up to formatting.
func EncodeAdjacencyRule(r AdjacencyRule) *clause.Node {
	required := make([]*clause.Node, len(r.RequiredProvinces))
	for i, id := range r.RequiredProvinces {
		required[i] = clause.ScalarInt(int64(id))
	}
	offset := make([]*clause.Node, len(r.Offset))
	for i, v := range r.Offset {
		offset[i] = clause.ScalarInt(int64(v))
	}
	fields := []clause.Field{
		clause.F("name", clause.Scalar(string(r.Name))),
		clause.F("contested", encodeLogic(r.Contested)),
		clause.F("enemy", encodeLogic(r.Enemy)),
		clause.F("friend", encodeLogic(r.Friend)),
		clause.F("neutral", encodeLogic(r.Neutral)),
		clause.F("required_provinces", clause.Array(required...)),
		clause.F("icon", clause.ScalarInt(int64(r.Icon))),
		clause.F("offset", clause.Array(offset...)),
	}
	if r.IsDisabled != nil {
		fields = append(fields, clause.F("is_disabled", clause.Object(
			clause.F("tooltip", clause.Scalar(r.IsDisabled.Tooltip)),
		)))
	}
	return clause.Object(fields...)
}

// EncodeAdjacencyRules builds the clause document for a whole rule set,
// rules ordered by name so output is deterministic.
func EncodeAdjacencyRules(rs *AdjacencyRules) *clause.Node {
	names := make([]string, 0, len(rs.Rules))
	for name := range rs.Rules {
		names = append(names, string(name))
	}
	sort.Strings(names)
	fields := make([]clause.Field, 0, len(names))
	for _, name := range names {
		rule := rs.Rules[wrappers.AdjacencyRuleName(name)]
		fields = append(fields, clause.F("adjacency_rule", EncodeAdjacencyRule(rule)))
	}
	return clause.Object(fields...)
}
