// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mchmarny/dinerec/pkg/errors"
	"github.com/mchmarny/dinerec/pkg/header"
)

// clockLayout is the 24-hour HH:MM layout used for opening hours.
const clockLayout = "15:04"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("timeofday", isTimeOfDay); err != nil {
			panic(fmt.Sprintf("register timeofday validation: %v", err))
		}
	})
	return validate
}

func isTimeOfDay(fl validator.FieldLevel) bool {
	_, err := time.Parse(clockLayout, fl.Field().String())
	return err == nil
}

// Validate checks every record and reports the first invalid one as a
// CATALOG_UNAVAILABLE error carrying the record index and failing fields.
func Validate(restaurants []Restaurant) error {
	v := getValidator()
	for i := range restaurants {
		err := v.Struct(restaurants[i])
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !stderrors.As(err, &fieldErrs) {
			return errors.Wrap(errors.ErrCodeCatalogUnavailable, "catalog validation failed", err)
		}

		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
		}
		return errors.WrapWithContext(errors.ErrCodeCatalogUnavailable,
			fmt.Sprintf("invalid restaurant record at index %d", i), err,
			map[string]any{
				"index":  i,
				"name":   restaurants[i].Name,
				"fields": strings.Join(fields, ","),
			})
	}
	return nil
}

// validateDocument checks the document header and its records.
func validateDocument(doc *Document) error {
	if doc.Kind != "" && doc.Kind != header.KindCatalog {
		return errors.NewWithContext(errors.ErrCodeCatalogUnavailable,
			"unexpected document kind", map[string]any{"kind": doc.Kind.String()})
	}
	return Validate(doc.Restaurants)
}
