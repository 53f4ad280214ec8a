package params

import (
	"strconv"

	"chroma-ca/internal/core"
)

// Snapshot groups the parameters for HUD presentation.
func (p *Parameters) Snapshot() core.ParameterSnapshot {
	group := func(name string, ks ...Kind) core.ParameterGroup {
		g := core.ParameterGroup{Name: name}
		for _, k := range ks {
			v := p.Get(k)
			var text string
			if v.Type() == TypeWord {
				text = strconv.Itoa(v.Word())
			} else {
				text = strconv.Itoa(int(v.Byte()))
			}
			g.Params = append(g.Params, core.Parameter{
				Key:         k.Key(),
				Label:       k.String(),
				Type:        core.ParamTypeInt,
				Value:       text,
				Description: k.Description(),
			})
		}
		return g
	}

	field := group("Field", FieldWidth, FieldHeight)
	field.Params = append(field.Params, core.Parameter{
		Key:   "seed",
		Label: "Seed",
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(p.Seed, 10),
	})
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		field,
		group("Rewards", CooperationReward, WinReward, LossReward, DrawReward),
		group("Hardness", HardeningRate, SofteningRate),
	}}
}
