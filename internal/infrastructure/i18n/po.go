package i18n

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chai2010/gettext-go/po"

	"ytreport/internal/domain/entities"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// ParsePO reads a gettext catalog and groups its translations by msgctxt
// (entries without context land in the "" group). The header entry,
// untranslated entries and fuzzy entries are skipped; plural entries keep
// msgstr[0].
func ParsePO(data []byte) (map[string]entities.Dictionary, error) {
	file, err := po.Load(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, fmt.Errorf("po: %w", err)
	}

	groups := make(map[string]entities.Dictionary)
	for _, msg := range file.Messages {
		str := msg.MsgStr
		if msg.MsgIdPlural != "" && len(msg.MsgStrPlural) > 0 {
			str = msg.MsgStrPlural[0]
		}
		if msg.MsgId == "" || str == "" || isFuzzy(msg.Flags) {
			continue
		}
		if groups[msg.MsgContext] == nil {
			groups[msg.MsgContext] = make(entities.Dictionary)
		}
		groups[msg.MsgContext][msg.MsgId] = str
	}
	return groups, nil
}

func isFuzzy(flags []string) bool {
	for _, f := range flags {
		if strings.TrimSpace(f) == "fuzzy" {
			return true
		}
	}
	return false
}
