package help

const ColdstartYAML = `# skincheck Quick Start

formats:
  text: "Console report (default)"
  yaml: "Full report as YAML to stdout"
  json: "Full report as JSON to stdout"

commands:
  default_dir: |
    skincheck

  other_dir: |
    skincheck path/to/skin

  yaml_report: |
    skincheck --format yaml path/to/skin

  priority_only: |
    skincheck --format json --fields required_percent,priority path/to/skin

  save_report: |
    skincheck --output reports/skin.txt path/to/skin

  ci_gate: |
    skincheck check --strict --quiet path/to/skin

report_sections:
  - "REQUIRED ELEMENTS: found/total and missing names per category"
  - "OPTIONAL ELEMENTS: found/total per category"
  - "ADDITIONAL FILES FOUND: .png files not in the list (only if any)"
  - "SUMMARY: required found/total with truncated percentage"
  - "CRITICAL MISSING FILES: missing hit circle and default combo numbers (only if any)"
  - "PRIORITY FILES TO ADD: first 10 missing from the priority categories"

matching_rules:
  - "Only *.png directly inside the directory is scanned, any case"
  - "Names are compared case-insensitively (HitCircle.PNG == hitcircle.png)"
  - "readme.md and required_elements.md are never reported as extra"
  - "name@2x.png variants are counted under HD variants and still listed as extra"
  - "skin.ini (any case) adds Skin name/author/version and combo colours to the header"

yaml_keys:
  - dir
  - skin
  - png_files
  - required
  - optional
  - required_totals
  - optional_totals
  - required_percent
  - extra
  - critical_missing
  - priority
  - hd_variants

exit_codes:
  - "0: report printed, or directory not found without --strict"
  - "1: --strict and required elements are missing"
  - "2: --strict and the directory does not exist"
`
