package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/stockmate/stockmate-api/internal/config"
	"github.com/stockmate/stockmate-api/internal/usecases/authenticating"
)

// Mints a service token for calling the internal API when auth is enabled.
// The token is signed with the configured secret and printed to stdout.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <service-name>\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).IssueToken(os.Args[1])
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Println(token)
}
