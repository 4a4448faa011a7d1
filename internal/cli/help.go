package cli

const helpText = `lc - Launcher
  Launches shortcuts by name as defined in the configuration file, for disk locations, urls, and executables.

Basic commands:
  lc --help: Print help
  lc --dir: Open configuration folder
  lc --edit: Edit configuration with default editor
  lc --create <Name> <Path>: Append a shortcut (the last definition of a name wins)
  lc --list: List shortcuts
  lc --search <Pattern>: Search names/locations matching a case-insensitive regular expression
  lc <Name> [<Arguments>...]: Open shortcut

Additional commands:
  lc --print <Name>: Print path of shortcut (useful in shell and with other programs)
  lc --open <Name> [<Arguments>...]: Open file with default program; Open other links with browser
  lc --import <bookmarks.yaml>: Append Homepage bookmarks as URL shortcuts
  lc --stats: Show launch counters (needs LC_REDIS_ADDR)
  lc --serve: Serve shortcuts as go-links on LC_LISTEN_ADDR
  lc --version: Print version information

Options:
  -f, --format table|json|yaml: Output format of --list, --search and --stats

Short forms: -d -e -c -l -s -p -o
`
