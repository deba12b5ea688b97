package main

import "github.com/leagueops/league-management/cmd"

func main() {
	cmd.Execute()
}
