package strategy

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/GGcarlson/Financial-Analysis-Toolkit/internal/domain"
)

// vpwMaxRate caps table withdrawal rates at 10% (table values are on a
// 0-10 percent scale).
const vpwMaxRate = 10.0

// vpwDefaultAge is used when no year state is available.
const vpwDefaultAge = 65

// VPWTable maps an equity allocation percentage (e.g. 60) to an age-indexed
// table of withdrawal percentages on a 0-10 scale.
type VPWTable map[int]map[int]float64

// VPW implements the Variable Percentage Withdrawal strategy: an age-based
// withdrawal percentage looked up in the allocation table closest to the
// portfolio's equity allocation. Percentages generally rise with age and
// fall with heavier equity allocations.
type VPW struct {
	tables VPWTable
	custom bool
}

// NewVPW creates a VPW strategy with the built-in allocation tables
// (20/40/60/80% equity).
func NewVPW() *VPW {
	return &VPW{tables: defaultVPWTables}
}

// NewVPWWithTable creates a VPW strategy with a caller-provided table set,
// replacing all built-in allocation buckets.
func NewVPWWithTable(tables VPWTable) *VPW {
	return &VPW{tables: tables, custom: true}
}

// NewVPWFromFile loads a custom table set from a YAML file. The file maps
// equity allocation percentages to age->rate tables; keys may be strings
// and are coerced to integers.
func NewVPWFromFile(path string) (*VPW, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read VPW table %s: %w", path, err)
	}

	var raw map[string]map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse VPW table: %w", err)
	}

	tables := make(VPWTable, len(raw))
	for equityKey, ageTable := range raw {
		equity, err := strconv.Atoi(equityKey)
		if err != nil {
			return nil, fmt.Errorf("invalid equity allocation key %q: %w", equityKey, err)
		}
		if len(ageTable) == 0 {
			return nil, fmt.Errorf("allocation %d has no age entries", equity)
		}
		ages := make(map[int]float64, len(ageTable))
		for ageKey, rate := range ageTable {
			age, err := strconv.Atoi(ageKey)
			if err != nil {
				return nil, fmt.Errorf("invalid age key %q in allocation %d: %w", ageKey, equity, err)
			}
			ages[age] = rate
		}
		tables[equity] = ages
	}

	return &VPW{tables: tables, custom: true}, nil
}

// CalculateWithdrawal looks up the withdrawal percentage for the current
// age and equity allocation and applies it to the current balance.
func (v *VPW) CalculateWithdrawal(state *domain.YearState, params domain.PortfolioParams) (float64, error) {
	age := vpwDefaultAge
	balance := params.InitBalance
	if state != nil {
		age = state.Age
		balance = state.Balance
	}

	equityKey, err := v.allocationKey(params.EquityPct)
	if err != nil {
		return 0, err
	}

	pct, err := v.withdrawalPercentage(age, equityKey)
	if err != nil {
		return 0, err
	}

	return balance * pct, nil
}

// allocationKey returns the table key numerically closest to the equity
// allocation; ties resolve to the smaller key.
func (v *VPW) allocationKey(equityPct float64) (int, error) {
	if len(v.tables) == 0 {
		return 0, fmt.Errorf("VPW table is empty - no equity allocations available")
	}

	target := int(equityPct * 100)
	keys := make([]int, 0, len(v.tables))
	for k := range v.tables {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	closest := keys[0]
	for _, k := range keys[1:] {
		if abs(k-target) < abs(closest-target) {
			closest = k
		}
	}
	return closest, nil
}

// withdrawalPercentage resolves the rate for an age: exact hit, boundary
// clamp outside the table range, or linear interpolation between the
// bracketing ages. The result is capped at 10% and returned as a fraction.
func (v *VPW) withdrawalPercentage(age, equityKey int) (float64, error) {
	ageTable := v.tables[equityKey]
	if len(ageTable) == 0 {
		return 0, fmt.Errorf("allocation %d has no age entries", equityKey)
	}

	if rate, ok := ageTable[age]; ok {
		return math.Min(rate, vpwMaxRate) / 100.0, nil
	}

	ages := make([]int, 0, len(ageTable))
	for a := range ageTable {
		ages = append(ages, a)
	}
	sort.Ints(ages)

	if age < ages[0] {
		return math.Min(ageTable[ages[0]], vpwMaxRate) / 100.0, nil
	}
	if age > ages[len(ages)-1] {
		return math.Min(ageTable[ages[len(ages)-1]], vpwMaxRate) / 100.0, nil
	}

	for i := 0; i < len(ages)-1; i++ {
		lower, upper := ages[i], ages[i+1]
		if lower <= age && age <= upper {
			lowerRate, upperRate := ageTable[lower], ageTable[upper]
			weight := float64(age-lower) / float64(upper-lower)
			rate := lowerRate + weight*(upperRate-lowerRate)
			return math.Min(rate, vpwMaxRate) / 100.0, nil
		}
	}

	return fourPercentRate, nil
}

// Name returns the strategy name
func (v *VPW) Name() string {
	return "vpw"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
