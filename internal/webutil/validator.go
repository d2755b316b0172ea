// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator 는 애플리케이션 전체에서 공유하는 검증기 인스턴스입니다.
var Validator *validator.Validate

// Trans 는 검증 에러 메시지 번역기입니다. validator 가 한국어 번역 패키지를
// 제공하지 않으므로 en 기본 번역 위에 한국어 메시지를 덮어씁니다.
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":         "이름",
	"title":        "교재명",
	"email":        "이메일",
	"password":     "비밀번호",
	"category":     "분류",
	"level":        "수준",
	"ticket_type":  "수강권 종류",
	"ticket_count": "수강권 횟수",
	"progress":     "진도",
	"date":         "날짜",
	"status":       "출결 상태",
	"text":         "문장",
}

func init() {
	Validator = validator.New()

	// json 태그에서 필드명을 얻도록 설정
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 사용자에게 보이는 메시지는 한국어로 덮어쓰기
	registerTranslation := func(tag string, msg string) {
		err := Validator.RegisterTranslation(tag, Trans,
			func(ut ut.Translator) error {
				return ut.Add(tag, msg, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				field := fe.Field()
				if translated, ok := fieldNameTranslations[field]; ok {
					field = translated
				}
				t, _ := ut.T(tag, field, fe.Param())
				return t
			},
		)
		if err != nil {
			log.Fatalf("failed to register translation for tag %q: %v", tag, err)
		}
	}

	registerTranslation("required", "{0}은(는) 필수 항목입니다.")
	registerTranslation("email", "{0}의 형식이 올바르지 않습니다.")
	registerTranslation("min", "{0}은(는) 최소 {1}자 이상이어야 합니다.")
	registerTranslation("max", "{0}은(는) 최대 {1}자까지 입력할 수 있습니다.")
	registerTranslation("oneof", "{0}에 허용되지 않는 값입니다.")
	registerTranslation("gte", "{0}은(는) {1} 이상이어야 합니다.")
}
