/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package parameters

// WikiParameter keys the engine's configuration registers.
type WikiParameter int

//go:generate stringer -type=WikiParameter
const (
	none WikiParameter = iota
	P_HEADINGMAXLEVEL
	P_LISTNESTINGCAP
	P_FIRSTROWHEADER
	P_LINEBREAKMODE
	P_MAXINPUTSIZE
	P_MAXMARKERRUN
	P_STOPPER
)

// Line break modes for paragraph continuation lines.
const (
	BreakHardBR    int = iota // continuation lines render as <br>
	BreakSoftSpace            // continuation lines render as a space
)

type ParameterGroup struct {
	params map[WikiParameter]interface{}
	level  int
	next   *ParameterGroup
}

// Registers holds the parameter set the parsing pipeline reads its
// configuration from. Groups allow scoped overrides.
type Registers struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewRegisters() *Registers {
	regs := &Registers{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_HEADINGMAXLEVEL] = 5         // levels h1…h5
	p[P_LISTNESTINGCAP] = 16         // deeper list/quote markers clamp here
	p[P_FIRSTROWHEADER] = true       // table row 1 renders inside <thead>
	p[P_LINEBREAKMODE] = BreakHardBR //
	p[P_MAXINPUTSIZE] = 1 << 20      // bytes; guard against adversarial input
	p[P_MAXMARKERRUN] = 512          // longest tolerated marker repetition
}

func (regs *Registers) Begingroup() {
	regs.grouplevel++
}

func (regs *Registers) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
			regs.grouplevel--
		}
	}
}

func (regs *Registers) Push(key WikiParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil {
			g = &ParameterGroup{}
			g.params = make(map[WikiParameter]interface{})
			g.level = regs.grouplevel
			regs.groups = g
		} else {
			if regs.groups.level < regs.grouplevel {
				g = &ParameterGroup{}
				g.params = make(map[WikiParameter]interface{})
				g.level = regs.grouplevel
				g.next = regs.groups
				regs.groups = g
			} else {
				g = regs.groups
			}
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *Registers) Get(key WikiParameter) interface{} {
	if key <= 0 || key == P_STOPPER {
		panic("parameter key outside range of wiki parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *Registers) N(key WikiParameter) int {
	return regs.Get(key).(int)
}

func (regs *Registers) B(key WikiParameter) bool {
	return regs.Get(key).(bool)
}
