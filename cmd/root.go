package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "machinv",
	Short: "Ansible dynamic inventory from Docker Machine",
	Long: `machinv turns machines provisioned with docker-machine into an Ansible
inventory: an 'all' group, one group per driver (e.g. digitalocean), and
per-host connection variables plus dm_ prefixed Docker Machine env vars.

Configuration is read from docker_machine.yml in the working directory.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: docker_machine.yml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// no SetConfigType so both docker_machine.yml and .yaml are found
		viper.SetConfigName("docker_machine")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}
