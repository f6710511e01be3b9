// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Prefix for environment variables overriding flags, such that ECDH_FIELD
// overrides --field and ECDH_ORDER_LIMIT overrides --order-limit.
const envPrefix = "ECDH"

// settings resolves every flag, giving precedence to the command line, then
// the environment, then the configuration file, then the flag default.
var settings = viper.New()

func initConfig() {
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	//
	if err := settings.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Optional config file
	if file := settings.GetString("config"); file != "" {
		settings.SetConfigFile(file)
		//
		if err := settings.ReadInConfig(); err != nil {
			fmt.Printf("error reading config file: %s\n", err)
			os.Exit(2)
		}
		//
		log.Debugf("using config file %s", settings.ConfigFileUsed())
	}
}

// Bind the local flags of a given command, such that they can be resolved
// through settings as well.
func bindFlags(cmd *cobra.Command) {
	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

// Get an expected flag, or exit if it does not exist.
func getFlag(cmd *cobra.Command, flag string) bool {
	checkFlag(cmd, flag)
	//
	return settings.GetBool(flag)
}

// Get an expected unsigned integer flag, or exit if it does not exist.
func getUint64(cmd *cobra.Command, flag string) uint64 {
	checkFlag(cmd, flag)
	//
	return settings.GetUint64(flag)
}

// Get an expected integer flag, or exit if it does not exist.
func getInt(cmd *cobra.Command, flag string) int {
	checkFlag(cmd, flag)
	//
	return settings.GetInt(flag)
}

// Get an expected string flag, or exit if it does not exist.
func getString(cmd *cobra.Command, flag string) string {
	checkFlag(cmd, flag)
	//
	return settings.GetString(flag)
}

// Check whether a flag was set explicitly, either on the command line or
// through the environment or configuration file.
func isSet(cmd *cobra.Command, flag string) bool {
	return cmd.Flags().Changed(flag) || settings.InConfig(flag) ||
		os.Getenv(envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))) != ""
}

func checkFlag(cmd *cobra.Command, flag string) {
	if cmd.Flags().Lookup(flag) == nil {
		fmt.Printf("unknown flag \"%s\"\n", flag)
		os.Exit(2)
	}
}
