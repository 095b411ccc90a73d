// Package config loads midir's configuration.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/midir/config.toml
//     (MIDIR_CONFIG_DIR overrides the directory)
//  3. the project file: an explicit --config path, otherwise .midir.toml or
//     .midir.yaml in the working directory
//  4. MIDIR_<SECTION>_<KEY> environment variables, e.g. MIDIR_ROOT_LEVELS
//  5. command line overrides
//
// root.levels and root.suffix are type checked before decoding so a
// misspelled value surfaces as a TYPE error rather than a decoder message.
package config
