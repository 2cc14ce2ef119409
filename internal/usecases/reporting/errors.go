package reporting

import "github.com/pkg/errors"

// Falhas de nível de requisição, devolvidas ao chamador interativo. No
// caminho de lote elas são capturadas por destinatário e viram Skipped ou
// Failed, nunca abortam o ciclo.
var (
	ErrCredentialMissing   = errors.New("nenhum token de acesso resolvível para o usuário")
	ErrAccountAccessDenied = errors.New("usuário não tem acesso à conta de anúncios solicitada")
)
