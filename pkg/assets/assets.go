package assets

import (
	_ "embed"
)

//go:embed logo.svg
var LogoBytes []byte

//go:embed snowflake.svg
var SnowflakeBytes []byte
