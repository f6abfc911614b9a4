// Package config loads the bank configuration from a TOML file. Every
// monetary field is declared as a string in the file and parsed into a
// decimal, keeping float64 out of the money path entirely.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"bankcore/rule"
)

// Config holds the per-variant account settings and the shared rule
// thresholds.
type Config struct {
	Savings  SavingsConfig  `toml:"savings"`
	Checking CheckingConfig `toml:"checking"`
	Business BusinessConfig `toml:"business"`
	Rules    RulesConfig    `toml:"rules"`
}

type SavingsConfig struct {
	InterestRate string `toml:"interest_rate"`
}

type CheckingConfig struct {
	OverdraftLimit string `toml:"overdraft_limit"`
}

type BusinessConfig struct {
	DailyCap string `toml:"daily_cap"`
}

// RulesConfig describes the rule set applied to every account at
// construction time. Empty thresholds mean the rule is not registered.
type RulesConfig struct {
	MinAmount     string `toml:"min_amount"`
	MaxAmount     string `toml:"max_amount"`
	BlockWeekends bool   `toml:"block_weekends"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Savings:  SavingsConfig{InterestRate: "0.015"},
		Checking: CheckingConfig{OverdraftLimit: "200"},
		Business: BusinessConfig{DailyCap: "5000"},
		Rules: RulesConfig{
			MinAmount: "0.01",
			MaxAmount: "1000000",
		},
	}
}

// Load reads path and overlays it on the defaults. A missing file is not an
// error: defaults apply. A present-but-broken file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	fields := map[string]string{
		"savings.interest_rate":    c.Savings.InterestRate,
		"checking.overdraft_limit": c.Checking.OverdraftLimit,
		"business.daily_cap":       c.Business.DailyCap,
	}
	for name, v := range fields {
		if _, err := decimal.NewFromString(v); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
	}
	for name, v := range map[string]string{
		"rules.min_amount": c.Rules.MinAmount,
		"rules.max_amount": c.Rules.MaxAmount,
	} {
		if v == "" {
			continue
		}
		if _, err := decimal.NewFromString(v); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
	}
	return nil
}

// InterestRate returns the parsed savings interest rate.
func (c Config) InterestRate() decimal.Decimal {
	return mustDecimal(c.Savings.InterestRate)
}

// OverdraftLimit returns the parsed checking overdraft limit.
func (c Config) OverdraftLimit() decimal.Decimal {
	return mustDecimal(c.Checking.OverdraftLimit)
}

// DailyCap returns the parsed business daily outflow cap.
func (c Config) DailyCap() decimal.Decimal {
	return mustDecimal(c.Business.DailyCap)
}

// Build returns the configured rules in a fixed order: min amount, max
// amount, weekend block.
func (r RulesConfig) Build() []rule.Rule {
	var rules []rule.Rule
	if r.MinAmount != "" {
		rules = append(rules, rule.MinAmount(mustDecimal(r.MinAmount)))
	}
	if r.MaxAmount != "" {
		rules = append(rules, rule.MaxAmount(mustDecimal(r.MaxAmount)))
	}
	if r.BlockWeekends {
		rules = append(rules, rule.NotOnWeekend())
	}
	return rules
}

// mustDecimal is only called on fields validate() already checked.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("config field not validated: %q", s))
	}
	return d
}
