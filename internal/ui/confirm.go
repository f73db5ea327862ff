package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

func ConfirmPromotion(target string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %s?", target)).
				Description("The current file will be backed up first.").
				Value(&confirmed),
		),
	)

	err := form.Run()
	if err != nil {
		return false, err
	}

	return confirmed, nil
}
