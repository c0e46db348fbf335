// Package cli is the colorpick command tree.
//
// Running colorpick without a subcommand starts the stdio bridge, the same
// as "colorpick serve". The other commands work on the persisted history and
// palettes directly and exit:
//
//	colorpick describe '#3498DB' --copy hsl
//	colorpick sample --image shot.png --x 120 --y 48
//	colorpick history list
//	colorpick palette save "Brand"
//	colorpick export --format css --output brand.css
//
// Global flags --config, --db and --log-level override the configuration
// file. Logs go to stderr; stdout is reserved for command output and the
// JSON-RPC stream.
package cli
