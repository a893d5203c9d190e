// SPDX-License-Identifier: Apache-2.0

package flags

import (
	"github.com/spf13/viper"
)

func ReportsDir() string {
	return viper.GetString("REPORTS_DIR")
}

func Document() string {
	return viper.GetString("DOCUMENT")
}

func Extension() string {
	return viper.GetString("EXTENSION")
}

func Workers() int { return viper.GetInt("WORKERS") }

func Verbose() bool {
	return viper.GetBool("VERBOSE")
}
