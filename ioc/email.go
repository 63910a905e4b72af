// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"github.com/ecodeclub/booknest/internal/email"
	"github.com/ecodeclub/booknest/internal/email/aliyun"
	"github.com/gotomicro/ego/core/econf"
)

func InitEmailService() email.Service {
	type Cfg struct {
		AccessID     string `yaml:"accessId"`
		AccessSecret string `yaml:"accessSecret"`
		AccountName  string `yaml:"accountName"`
	}
	var cfg Cfg
	// email.ali 配置
	_ = econf.UnmarshalKey("email.ali", &cfg)
	cli, err := aliyun.NewAliyunDirectMailAPI(cfg.AccessID, cfg.AccessSecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return cli
}
