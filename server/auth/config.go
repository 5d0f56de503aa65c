package auth

import (
	"fmt"
	"strings"

	"github.com/campushub/clubhub/internal/xtime"
)

type Config struct {
	SessionTTL xtime.Duration `toml:"session_ttl"`
	BcryptCost int            `toml:"bcrypt_cost"`
	Admins     []string       `toml:"admins"`
	LoginEvery xtime.Duration `toml:"login_every"`
	LoginBurst int            `toml:"login_burst"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n SessionTTL: %s\n BcryptCost: %d\n Admins: %s\n LoginEvery: %s\n LoginBurst: %d",
		c.SessionTTL,
		c.BcryptCost,
		strings.Join(c.Admins, ", "),
		c.LoginEvery,
		c.LoginBurst,
	)
}
