package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage API users",
}

var (
	userName     string
	userPassword string
)

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user that can request API tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.authService().CreateUser(cmd.Context(), userName, userPassword)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userName, "username", "", "login name")
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "password")
	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userAddCmd)
}
