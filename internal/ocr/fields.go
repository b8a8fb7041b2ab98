package ocr

import (
	"regexp"
	"strings"
)

// fieldLabels maps canonical field names to the label strings printed on the
// European accident statement in the languages we OCR. Matching is substring
// and case-insensitive, so the lists only need the distinctive part of each
// label.
var fieldLabels = map[string][]string{
	"accident_date": {
		"date of accident", "datum ongeval", "datum van het ongeval",
		"datum des unfalls", "unfalldatum", "date de l'accident",
	},
	"locality": {
		"locality", "plaats", "ort", "localit",
	},
	"country": {
		"country", "land", "pays",
	},
	"injuries": {
		"injuries", "gewonden", "letsel", "verletzte", "bless",
	},
	"witnesses": {
		"witnesses", "getuigen", "zeugen", "témoins", "temoins",
	},
	"registration_number": {
		"registration number", "kenteken", "amtliches kennzeichen", "immatriculation",
	},
	"make_type": {
		"make, type", "merk, type", "marke, typ", "marque, type",
	},
	"insurance_company": {
		"insurance company", "verzekeringsmaatschappij", "versicherungsgesellschaft",
		"société d'assurance",
	},
	"policy_number": {
		"policy number", "polisnummer", "versicherungsschein", "police n",
	},
	"green_card_number": {
		"green card", "groene kaart", "grüne karte", "carte verte",
	},
	"driver": {
		"driver", "bestuurder", "fahrer", "conducteur",
	},
	"remarks": {
		"remarks", "opmerkingen", "bemerkungen", "observations",
	},
}

var (
	// Tesseract renders marked boxes as one of a few glyphs depending on how
	// the pen stroke survived binarization.
	reCheckedBox   = regexp.MustCompile(`☒|☑|✓|✗|\[[xX]\]|\([xX]\)`)
	reUncheckedBox = regexp.MustCompile(`☐|\[ ?\]|\( ?\)`)
	reLabelValue   = regexp.MustCompile(`[:：]\s*(.+)$`)
)

// parseFields scans the OCR text line by line for known form labels and
// returns what was written after each, plus the count of marked checkboxes
// across the whole text. Only the first occurrence of a label wins; the form
// prints each label once per vehicle column and OCR order is top-down.
func parseFields(txt string) (map[string]FieldHint, int) {
	fields := make(map[string]FieldHint)
	boxes := 0

	for _, line := range strings.Split(txt, "\n") {
		boxes += len(reCheckedBox.FindAllString(line, -1))
		lower := strings.ToLower(line)

		for name, labels := range fieldLabels {
			if _, seen := fields[name]; seen {
				continue
			}
			for _, label := range labels {
				if !strings.Contains(lower, label) {
					continue
				}
				hint := FieldHint{}
				if m := reLabelValue.FindStringSubmatch(line); m != nil {
					if v := strings.TrimSpace(m[1]); v != "" && !reUncheckedBox.MatchString(v) {
						hint.Text = &v
					}
				}
				if reCheckedBox.MatchString(line) {
					checked := true
					hint.Checked = &checked
				} else if reUncheckedBox.MatchString(line) {
					checked := false
					hint.Checked = &checked
				}
				if hint.Text != nil || hint.Checked != nil {
					fields[name] = hint
				}
				break
			}
		}
	}
	if len(fields) == 0 {
		fields = nil
	}
	return fields, boxes
}
