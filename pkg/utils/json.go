package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa qualquer valor em JSON indentado, usado nas saídas da CLI
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		logrus.WithError(err).Warn("erro ao serializar JSON")
		return ""
	}

	return string(buffer)
}
