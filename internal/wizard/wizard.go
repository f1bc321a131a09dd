package wizard

import (
	"github.com/charmbracelet/huh"
)

// Answers holds all user responses from the wizard.
type Answers struct {
	VerboseOutput  bool
	SplitTags      bool
	SplitSeparator string
	Strict         bool
	TagKeyedGroups bool
}

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*Answers, error) {
	answers := &Answers{
		VerboseOutput:  true,
		SplitSeparator: ":",
	}

	desc := "Tags like 'env:prod' become dm_tag_env = \"prod\" instead of a single bare tag variable."
	if !detection.DockerMachineAvailable {
		desc += "\n\nNote: docker-machine was not found in PATH."
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Split tags into key/value pairs?").
				Description(desc).
				Value(&answers.SplitTags),
			huh.NewInput().
				Title("Tag separator").
				Description("Character separating key from value in a tag.").
				Value(&answers.SplitSeparator),
			huh.NewConfirm().
				Title("Include full machine metadata per host?").
				Description("Stores the complete inspect descriptor in docker_machine_node_attributes.").
				Value(&answers.VerboseOutput),
			huh.NewConfirm().
				Title("Strict rule evaluation?").
				Description("Fail the whole run when a constructed rule cannot be evaluated.").
				Value(&answers.Strict),
			huh.NewConfirm().
				Title("Add an example keyed_groups rule for tags?").
				Description("Creates groups like tag_env_prod from tag variables.").
				Value(&answers.TagKeyedGroups),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return answers, nil
}
