package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_4_study_scheduler/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"grade":          "評価",
	"vocab_ids":      "単語ID",
	"vocab_limit":    "単語数",
	"interests":      "興味タグ",
	"weak_areas":     "苦手分野",
	"notify_channel": "通知チャネル",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("oneof", "{0}は[{1}]のいずれかで指定してください。")
	registerTranslation("min", "{0}は{1}以上で指定してください。")
	registerTranslation("max", "{0}は{1}以下で指定してください。")
}

// ValidateStruct runs the shared validator and converts the first failure
// into a VALIDATION_ERROR AppError wrapping model.ErrInvalidInput.
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	first := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		first.Translate(Trans),
		first.Field(),
		model.ErrInvalidInput,
	)
}
