package webutil

import (
	"log"
	"reflect"
	"strings"

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
	"name":             "名前",
	"email":            "メールアドレス",
	"password":         "パスワード",
	"term":             "単語",
	"meaning":          "意味",
	"pronunciation":    "発音",
	"example":          "例文",
	"imageUrl":         "画像URL",
	"audioUrl":         "音声URL",
	"description":      "説明",
	"title":            "タイトル",
	"maxScore":         "満点",
	"content":          "問題文",
	"answers":          "選択肢",
	"correctAnswer":    "正解",
	"testId":           "テストID",
	"questionId":       "問題ID",
	"currentWordIndex": "現在の単語位置",
	"totalWords":       "単語数",
	"isMarked":         "復習マーク",
}

func translateField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// --- ここからが日本語化の処理 ---

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 必要に応じて、個別のエラーメッセージを上書き・カスタマイズ
	// registerTranslation は、メッセージテンプレートを登録するヘルパー関数
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe))
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("url", "{0}は有効なURLではありません。")

	// min / max は文字列なら文字数、スライスなら件数、数値なら値の範囲
	registerParamTranslation := func(tag, strMsg, sliceMsg, numMsg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add("custom-"+tag+"-string", strMsg, true); err != nil {
				return err
			}
			if err := ut.Add("custom-"+tag+"-items", sliceMsg, true); err != nil {
				return err
			}
			return ut.Add("custom-"+tag+"-number", numMsg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := "custom-" + tag + "-number"
			switch fe.Kind() {
			case reflect.String:
				key = "custom-" + tag + "-string"
			case reflect.Slice, reflect.Map, reflect.Array:
				key = "custom-" + tag + "-items"
			}
			t, _ := ut.T(key, translateField(fe), fe.Param())
			return t
		})
	}
	registerParamTranslation("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}件以上指定してください。", "{0}は{1}以上で指定してください。")
	registerParamTranslation("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}件以下で指定してください。", "{0}は{1}以下で指定してください。")
}
