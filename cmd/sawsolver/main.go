package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/funmatu/sawsolver/bootstrap"
	"github.com/funmatu/sawsolver/configuration"
)

var banner = `
  ____    ___        __  ____        _
 / ___|  / \ \      / / / ___|  ___ | |_   _____ _ __
 \___ \ / _ \ \ /\ / /  \___ \ / _ \| \ \ / / _ \ '__|
  ___) / ___ \ V  V /    ___) | (_) | |\ V /  __/ |
 |____/_/   \_\_/\_/    |____/ \___/|_| \_/ \___|_|
                                 version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _, err := bootstrap.Bootstrap(c)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	start()
}
