package service

import (
	"fmt"
	"os"
	"strings"

	"quill/app/repositories"
)

// openStore opens the on-disk database at path, creating it when missing.
var openStore = repositories.Open

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// confirm asks a yes/no question on stdin; anything but y or Y is a no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	var response string
	fmt.Scanln(&response)
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}
