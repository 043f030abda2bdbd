package templates

import (
	"github.com/jakoblorz/init-project/internal/models"
)

// Kind identifies one generated artifact of an archetype.
type Kind string

const (
	BackendEnv            Kind = "backend.env"
	BackendEnvExample     Kind = "backend.env-example"
	BackendGitignore      Kind = "backend.gitignore"
	BackendReadme         Kind = "backend.readme"
	BackendDatabase       Kind = "backend.database"
	BackendPingRoute      Kind = "backend.ping-route"
	BackendPingController Kind = "backend.ping-controller"
	BackendErrorHandler   Kind = "backend.error-handler"
	BackendLogger         Kind = "backend.logger"
	BackendApp            Kind = "backend.app"
	BackendIndex          Kind = "backend.index"
	BackendTSConfig       Kind = "backend.tsconfig"
	BackendESLint         Kind = "backend.eslint"
	BackendPrettier       Kind = "backend.prettier"
	BackendDockerfile     Kind = "backend.dockerfile"
	BackendDockerfileDev  Kind = "backend.dockerfile-dev"
	BackendCompose        Kind = "backend.compose"
	BackendComposeDB      Kind = "backend.compose-db"

	ReactGlobalStyles Kind = "react.globals-css"
	ReactButtonStyles Kind = "react.button-css"
	ReactButton       Kind = "react.button"
	ReactApp          Kind = "react.app"
	ReactIndex        Kind = "react.index"
	ReactReadme       Kind = "react.readme"
	ReactPrettier     Kind = "react.prettier"
	ReactESLint       Kind = "react.eslint"

	NextGlobalStyles Kind = "nextjs.globals-css"
	NextButtonStyles Kind = "nextjs.button-css"
	NextButton       Kind = "nextjs.button"
	NextButtonIndex  Kind = "nextjs.button-index"
	NextPage         Kind = "nextjs.page"
	NextPageStyles   Kind = "nextjs.page-css"
	NextReadme       Kind = "nextjs.readme"
	NextPrettier     Kind = "nextjs.prettier"
	NextESLint       Kind = "nextjs.eslint"
)

// axis names the option subset a kind's content depends on.
type axis int

const (
	axisNone axis = iota
	axisLang
	axisDB
	axisDBLang
)

// kindEntry describes where a kind is written and which template backs it.
// Path gets Typed or Plain appended depending on the language variant.
type kindEntry struct {
	Archetype   models.ProjectType
	Path        string
	Typed       string
	Plain       string
	File        string
	Axis        axis
	Description string
}

var kinds = map[Kind]kindEntry{
	BackendEnv:            {Archetype: models.ProjectTypeBackend, Path: ".env", File: "backend/env", Axis: axisDB},
	BackendEnvExample:     {Archetype: models.ProjectTypeBackend, Path: ".env.example", File: "backend/env", Axis: axisDB, Description: "Template for the environment variables"},
	BackendGitignore:      {Archetype: models.ProjectTypeBackend, Path: ".gitignore", File: "backend/gitignore"},
	BackendReadme:         {Archetype: models.ProjectTypeBackend, Path: "README.md", File: "backend/readme"},
	BackendDatabase:       {Archetype: models.ProjectTypeBackend, Path: "src/config/database", Typed: ".ts", Plain: ".js", File: "backend/database", Axis: axisDBLang},
	BackendPingRoute:      {Archetype: models.ProjectTypeBackend, Path: "src/routes/ping", Typed: ".ts", Plain: ".js", File: "backend/ping_route", Axis: axisLang},
	BackendPingController: {Archetype: models.ProjectTypeBackend, Path: "src/controllers/ping", Typed: ".ts", Plain: ".js", File: "backend/ping_controller", Axis: axisLang},
	BackendErrorHandler:   {Archetype: models.ProjectTypeBackend, Path: "src/middleware/errorHandler", Typed: ".ts", Plain: ".js", File: "backend/error_handler", Axis: axisLang},
	BackendLogger:         {Archetype: models.ProjectTypeBackend, Path: "src/utils/logger", Typed: ".ts", Plain: ".js", File: "backend/logger", Axis: axisLang},
	BackendApp:            {Archetype: models.ProjectTypeBackend, Path: "src/app", Typed: ".ts", Plain: ".js", File: "backend/app", Axis: axisDBLang},
	BackendIndex:          {Archetype: models.ProjectTypeBackend, Path: "index", Typed: ".ts", Plain: ".js", File: "backend/index", Axis: axisLang},
	BackendTSConfig:       {Archetype: models.ProjectTypeBackend, Path: "tsconfig.json", File: "backend/tsconfig"},
	BackendESLint:         {Archetype: models.ProjectTypeBackend, Path: ".eslintrc.js", File: "backend/eslintrc", Axis: axisLang},
	BackendPrettier:       {Archetype: models.ProjectTypeBackend, Path: ".prettierrc", File: "shared/prettierrc"},
	BackendDockerfile:     {Archetype: models.ProjectTypeBackend, Path: "Dockerfile", File: "backend/dockerfile", Axis: axisLang},
	BackendDockerfileDev:  {Archetype: models.ProjectTypeBackend, Path: "Dockerfile.dev", File: "backend/dockerfile_dev"},
	BackendCompose:        {Archetype: models.ProjectTypeBackend, Path: "docker-compose.yml", File: "backend/compose", Axis: axisDB},
	BackendComposeDB:      {Archetype: models.ProjectTypeBackend, Path: "docker-compose.db.yml", File: "backend/compose_db", Axis: axisDB},

	ReactGlobalStyles: {Archetype: models.ProjectTypeReact, Path: "src/styles/globals.css", File: "react/globals_css"},
	ReactButtonStyles: {Archetype: models.ProjectTypeReact, Path: "src/components/Button.module.css", File: "shared/button_css"},
	ReactButton:       {Archetype: models.ProjectTypeReact, Path: "src/components/Button", Typed: ".tsx", Plain: ".jsx", File: "react/button", Axis: axisLang},
	ReactApp:          {Archetype: models.ProjectTypeReact, Path: "src/App", Typed: ".tsx", Plain: ".js", File: "react/app", Axis: axisLang},
	ReactIndex:        {Archetype: models.ProjectTypeReact, Path: "src/index", Typed: ".tsx", Plain: ".js", File: "react/index", Axis: axisLang},
	ReactReadme:       {Archetype: models.ProjectTypeReact, Path: "README.md", File: "react/readme", Axis: axisLang},
	ReactPrettier:     {Archetype: models.ProjectTypeReact, Path: ".prettierrc", File: "shared/prettierrc"},
	ReactESLint:       {Archetype: models.ProjectTypeReact, Path: ".eslintrc.js", File: "react/eslintrc", Axis: axisLang},

	NextGlobalStyles: {Archetype: models.ProjectTypeNextJS, Path: "app/globals.css", File: "nextjs/globals_css"},
	NextButtonStyles: {Archetype: models.ProjectTypeNextJS, Path: "components/Button/Button.module.css", File: "shared/button_css"},
	NextButton:       {Archetype: models.ProjectTypeNextJS, Path: "components/Button/Button", Typed: ".tsx", Plain: ".js", File: "nextjs/button", Axis: axisLang},
	NextButtonIndex:  {Archetype: models.ProjectTypeNextJS, Path: "components/Button/index", Typed: ".ts", Plain: ".js", File: "nextjs/button_index"},
	NextPage:         {Archetype: models.ProjectTypeNextJS, Path: "app/page", Typed: ".tsx", Plain: ".js", File: "nextjs/page", Axis: axisLang},
	NextPageStyles:   {Archetype: models.ProjectTypeNextJS, Path: "app/page.module.css", File: "nextjs/page_css"},
	NextReadme:       {Archetype: models.ProjectTypeNextJS, Path: "README.md", File: "nextjs/readme", Axis: axisLang},
	NextPrettier:     {Archetype: models.ProjectTypeNextJS, Path: ".prettierrc", File: "shared/prettierrc"},
	NextESLint:       {Archetype: models.ProjectTypeNextJS, Path: ".eslintrc.json", File: "nextjs/eslintrc", Axis: axisLang},
}

// Kinds returns every kind an archetype can emit, sorted by kind name.
func Kinds(archetype models.ProjectType) []Kind {
	var out []Kind
	for kind, entry := range kinds {
		if entry.Archetype == archetype {
			out = append(out, kind)
		}
	}
	sortKinds(out)
	return out
}

// Archetype returns the project type a kind belongs to.
func (k Kind) Archetype() models.ProjectType {
	return kinds[k].Archetype
}

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	_, ok := kinds[k]
	return ok
}
