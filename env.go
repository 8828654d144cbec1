// Completion: 100% - Environment complete
package bajo

// env.go implements Environment, the fixed target description a Script
// builds against (spec section 4.F): the RAM and code address regions,
// the name-to-index map for named registers, and the pass budget the
// layout engine's fixpoint search is allowed to spend before giving up.

// Region is a half-open byte range [Start, End).
type Region struct {
	Start uint32
	End   uint32
}

func (r Region) contains(addr uint32) bool { return addr >= r.Start && addr < r.End }

func (r Region) overlaps(o Region) bool {
	return r.Start < o.End && o.Start < r.End
}

// Environment describes the machine a Script is built for: where code and
// RAM live, and which names resolve to which register indices.
type Environment struct {
	RAMRegion      Region
	CodeRegion     Region
	NamedRegisters map[string]uint32
	MaxPasses      int
}

// DefaultEnvironment mirrors the original implementation's default
// target: a 64KiB RAM region below a 4GiB code region, with the two
// conventional ABI register names bound.
var DefaultEnvironment = &Environment{
	RAMRegion:  Region{Start: 0, End: 0x1_00_00},
	CodeRegion: Region{Start: 0x1_00_00, End: 0xFFFF_FFFF},
	NamedRegisters: map[string]uint32{
		"sp": 13,
		"lr": 14,
	},
	MaxPasses: 16,
}

// NewEnvironment validates and constructs an Environment. The regions
// must be well-formed, non-overlapping, and the RAM region word-aligned;
// at least 3 passes are required since the fixpoint search needs 3
// consecutive identical snapshots to call a layout converged.
func NewEnvironment(ramRegion, codeRegion Region, namedRegisters map[string]uint32, maxPasses int) (*Environment, error) {
	if codeRegion.Start > codeRegion.End {
		return nil, newErr(Value, "bad code region", codeRegion)
	}
	if ramRegion.Start > ramRegion.End {
		return nil, newErr(Value, "bad ram region", ramRegion)
	}
	if codeRegion.overlaps(ramRegion) {
		return nil, newErr(Value, "memory regions overlap", ramRegion, codeRegion)
	}
	if ramRegion.Start%4 != 0 || ramRegion.End%4 != 0 {
		return nil, newErr(Value, "ram range must be word-aligned", ramRegion)
	}
	if maxPasses < 3 {
		return nil, newErr(Value, "at least 3 build passes are required", maxPasses)
	}
	regs := make(map[string]uint32, len(namedRegisters))
	for k, v := range namedRegisters {
		regs[k] = v
	}
	return &Environment{
		RAMRegion:      ramRegion,
		CodeRegion:     codeRegion,
		NamedRegisters: regs,
		MaxPasses:      maxPasses,
	}, nil
}
