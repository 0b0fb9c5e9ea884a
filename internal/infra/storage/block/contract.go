package block

import "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
