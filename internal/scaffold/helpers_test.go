package scaffold

import (
	"path/filepath"

	"github.com/jakoblorz/init-project/internal/filesystem"
	"github.com/jakoblorz/init-project/internal/provision"
)

const npmInitManifest = `{
  "name": "svc",
  "version": "1.0.0",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "license": "ISC"
}
`

const craManifest = `{
  "name": "app",
  "version": "0.1.0",
  "private": true,
  "dependencies": {"react": "^18.2.0", "react-dom": "^18.2.0", "react-scripts": "5.0.1"},
  "scripts": {"start": "react-scripts start", "build": "react-scripts build", "test": "react-scripts test"}
}
`

const nextManifest = `{
  "name": "web",
  "version": "0.1.0",
  "private": true,
  "scripts": {"dev": "next dev", "build": "next build", "start": "next start", "lint": "next lint"},
  "dependencies": {"next": "14.2.3", "react": "^18", "react-dom": "^18", "tailwindcss": "^3.4.1"},
  "devDependencies": {"eslint": "^8", "eslint-config-next": "14.2.3", "postcss": "^8", "autoprefixer": "^10"}
}
`

// emulateTools makes runner reproduce the files the real scaffolding tools
// leave behind, so plans can run end to end against mfs.
func emulateTools(mfs *filesystem.MockFileSystem, runner *provision.MockRunner) {
	runner.RunFunc = func(cmd provision.Command) error {
		if len(cmd.Args) == 0 {
			return nil
		}
		switch {
		case cmd.Args[0] == "init":
			mfs.AddFile(filepath.Join(cmd.Dir, "package.json"), []byte(npmInitManifest))

		case cmd.Args[0] == "create-react-app":
			root := filepath.Join(cmd.Dir, cmd.Args[1])
			mfs.AddFile(filepath.Join(root, "package.json"), []byte(craManifest))
			mfs.AddFile(filepath.Join(root, ".gitignore"), []byte("/node_modules\n/build\n.env.local\n"))
			mfs.AddFile(filepath.Join(root, "public", "index.html"), []byte("<div id=\"root\"></div>\n"))
			mfs.AddFile(filepath.Join(root, "src", "App.css"), []byte(".App {}\n"))
			mfs.AddFile(filepath.Join(root, "src", "logo.svg"), []byte("<svg/>\n"))
			mfs.AddFile(filepath.Join(root, "src", "App.js"), []byte("export default function App() {}\n"))
			mfs.AddFile(filepath.Join(root, "node_modules", "react", "index.js"), []byte("module.exports = {}\n"))

		case cmd.Args[0] == "create-next-app":
			root := filepath.Join(cmd.Dir, cmd.Args[1])
			mfs.AddFile(filepath.Join(root, "package.json"), []byte(nextManifest))
			mfs.AddFile(filepath.Join(root, ".gitignore"), []byte("/node_modules\n/.next/\n"))
			mfs.AddFile(filepath.Join(root, "app", "layout.js"), []byte("export default function RootLayout() {}\n"))
			mfs.AddFile(filepath.Join(root, "app", "page.js"), []byte("export default function Home() {}\n"))
			mfs.AddFile(filepath.Join(root, "tailwind.config.js"), []byte("module.exports = {}\n"))
			mfs.AddFile(filepath.Join(root, "postcss.config.mjs"), []byte("export default {}\n"))
		}
		return nil
	}
}
