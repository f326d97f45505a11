// cmd/tools/config-preview/main.go
//
// Prints the agent draft and call-flow configuration the factory would
// synthesize for a given archetype and language, without touching any
// backing service. Useful for reviewing generated defaults.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"voiceagent-workers/internal/common/config"
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/factory"
	"voiceagent-workers/internal/models"
)

func main() {
	archetype := flag.String("archetype", "inbound_receptionist", "Agent archetype")
	language := flag.String("language", "en", "Agent language code")
	businessName := flag.String("business", "Example Business", "Business name used in templates and prompts")
	kind := flag.String("kind", "all", "What to print: agent, configuration, or all")
	flag.Parse()

	f := factory.New(config.DefaultSynthesis(), logger.NewNoOpLogger())

	out := make(map[string]interface{})

	if *kind == "agent" || *kind == "all" {
		draft, err := f.CreateAgent(models.CreateAgentRequest{
			Archetype: models.Archetype(*archetype),
			Language:  models.Language(*language),
			BusinessContext: models.BusinessContext{
				BusinessName: *businessName,
			},
		}, "preview")
		if err != nil {
			fmt.Fprintf(os.Stderr, "agent synthesis failed: %v\n", err)
			os.Exit(1)
		}
		out["agent"] = draft
	}

	if *kind == "configuration" || *kind == "all" {
		cfgDraft, err := f.CreateAgentConfiguration(
			models.Archetype(*archetype), models.Language(*language))
		if err != nil {
			fmt.Fprintf(os.Stderr, "configuration synthesis failed: %v\n", err)
			os.Exit(1)
		}
		out["configuration"] = cfgDraft
	}

	if len(out) == 0 {
		fmt.Fprintf(os.Stderr, "unknown kind %q, expected agent, configuration, or all\n", *kind)
		flag.Usage()
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
		os.Exit(1)
	}
}
