package cancel_booking

import "html/template"

// Страницы отдаются напрямую из письма клиента, поэтому верстка
// самодостаточна: без внешних стилей и скриптов.
var confirmPageTmpl = template.Must(template.New("confirm").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Annulation de rendez-vous</title>
  <style>
    body { font-family: -apple-system, "Segoe UI", sans-serif; background: #f4f4f5; margin: 0; padding: 40px 16px; }
    .card { max-width: 420px; margin: 0 auto; background: #fff; border-radius: 12px; padding: 32px; box-shadow: 0 1px 4px rgba(0,0,0,.08); }
    h1 { font-size: 20px; margin: 0 0 16px; }
    p { color: #52525b; line-height: 1.5; }
    .details { background: #fafafa; border-radius: 8px; padding: 16px; margin: 16px 0; }
    .details div { margin: 4px 0; }
    button { width: 100%; padding: 12px; border: 0; border-radius: 8px; background: #dc2626; color: #fff; font-size: 15px; cursor: pointer; }
    button:hover { background: #b91c1c; }
    .result { display: none; text-align: center; }
  </style>
</head>
<body>
  <div class="card">
    <div id="confirm">
      <h1>Annuler le rendez-vous ?</h1>
      <p>Vous êtes sur le point d'annuler le rendez-vous suivant :</p>
      <div class="details">
        <div><strong>{{.Name}}</strong></div>
        <div>{{.Date}} à {{.Time}}</div>
      </div>
      <p>Cette action est définitive.</p>
      <button onclick="cancelBooking()">Confirmer l'annulation</button>
    </div>
    <div id="done" class="result">
      <h1>Rendez-vous annulé</h1>
      <p>Votre rendez-vous a bien été annulé. Le créneau est de nouveau disponible.</p>
    </div>
    <div id="error" class="result">
      <h1>Annulation impossible</h1>
      <p id="error-message">Une erreur est survenue. Veuillez réessayer plus tard.</p>
    </div>
  </div>
  <script>
    async function cancelBooking() {
      try {
        const resp = await fetch(window.location.pathname, {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ token: {{.Token}} }),
        });
        document.getElementById("confirm").style.display = "none";
        if (resp.ok) {
          document.getElementById("done").style.display = "block";
        } else {
          const body = await resp.json().catch(() => ({}));
          if (body.error) {
            document.getElementById("error-message").textContent = body.error;
          }
          document.getElementById("error").style.display = "block";
        }
      } catch (e) {
        document.getElementById("confirm").style.display = "none";
        document.getElementById("error").style.display = "block";
      }
    }
  </script>
</body>
</html>
`))

var invalidTokenPageTmpl = template.Must(template.New("invalid").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Lien invalide</title>
  <style>
    body { font-family: -apple-system, "Segoe UI", sans-serif; background: #f4f4f5; margin: 0; padding: 40px 16px; }
    .card { max-width: 420px; margin: 0 auto; background: #fff; border-radius: 12px; padding: 32px; box-shadow: 0 1px 4px rgba(0,0,0,.08); text-align: center; }
    h1 { font-size: 20px; margin: 0 0 16px; }
    p { color: #52525b; line-height: 1.5; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Lien d'annulation invalide</h1>
    <p>Ce lien d'annulation est invalide ou a déjà été utilisé.</p>
  </div>
</body>
</html>
`))
